package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmltomd/internal/configloader"
	"github.com/yaklabco/htmltomd/internal/logging"
	"github.com/yaklabco/htmltomd/pkg/config"
	"github.com/yaklabco/htmltomd/pkg/reporter"
	"github.com/yaklabco/htmltomd/pkg/runner"
)

// convertFlags holds the flags for the convert command.
type convertFlags struct {
	format         string
	jobs           int
	outputDir      string
	ignore         []string
	keepTags       []string
	removeTags     []string
	headingStyle   string
	codeBlockStyle string
	linkStyle      string
	referenceStyle string
	gfmTables      bool
	strikethrough  bool
	backup         bool
	compact        bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert HTML files to Markdown",
		Long: `Convert walks the given files and directories, converting every HTML
document it finds into Markdown. With no paths, it walks the current
directory.

Examples:
  htmltomd convert page.html                Convert a single file
  htmltomd convert docs/                    Convert a directory recursively
  htmltomd convert --output-dir out docs/   Mirror output into out/
  htmltomd convert --format json docs/      Report results as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			colorMode, _ := cmd.Flags().GetString("color")
			return runConvert(cmd, args, flags, configPath, colorMode)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text, table, or json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel conversion workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "mirror converted files into this directory")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.keepTags, "keep-tags", nil, "tags to keep as raw HTML")
	cmd.Flags().StringSliceVar(&flags.removeTags, "remove-tags", nil, "tags to drop with their contents when no built-in rule converts them")
	cmd.Flags().StringVar(&flags.headingStyle, "heading-style", "", "setext or atx")
	cmd.Flags().StringVar(&flags.codeBlockStyle, "code-block-style", "", "indented or fenced")
	cmd.Flags().StringVar(&flags.linkStyle, "link-style", "", "inlined or referenced")
	cmd.Flags().StringVar(&flags.referenceStyle, "reference-style", "", "full, collapsed, or shortcut")
	cmd.Flags().BoolVar(&flags.gfmTables, "gfm-tables", false, "render <table> as GitHub Flavored Markdown tables")
	cmd.Flags().BoolVar(&flags.strikethrough, "strikethrough", false, "render <del>/<s> as ~~strikethrough~~")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "back up an existing output file before overwriting it")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact report output where applicable")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags, configPath, colorMode string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewInteractive()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := cliOverrides(flags)

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	finalCfg := loadResult.Config

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		OutputDir:    finalCfg.OutputDir,
		Config:       finalCfg,
		Backup:       flags.backup,
	}

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("build reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return ErrConvertErrors
	}
	return nil
}

// cliOverrides builds a config.Config carrying only the fields the user
// actually set on the command line, so configloader.merge leaves
// unset fields to lower-precedence sources.
func cliOverrides(flags *convertFlags) *config.Config {
	cfg := &config.Config{
		HeadingStyle:   flags.headingStyle,
		CodeBlockStyle: flags.codeBlockStyle,
		LinkStyle:      flags.linkStyle,
		ReferenceStyle: flags.referenceStyle,
		GFMTables:      flags.gfmTables,
		Strikethrough:  flags.strikethrough,
		Jobs:           flags.jobs,
		OutputDir:      flags.outputDir,
		Ignore:         flags.ignore,
		KeepTags:       flags.keepTags,
		RemoveTags:     flags.removeTags,
	}
	if strings.TrimSpace(flags.format) != "" {
		cfg.Format = config.OutputFormat(flags.format)
	}
	return cfg
}
