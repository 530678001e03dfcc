// Package cli provides the Cobra command structure for htmltomd.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmltomd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root htmltomd command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "htmltomd",
		Short: "Convert HTML into clean, CommonMark-flavored Markdown",
		Long: `htmltomd converts HTML documents into Markdown, written in Go.

It walks a DOM tree and applies a configurable set of rendering rules to
produce CommonMark output, with optional GitHub Flavored Markdown
extensions (tables, strikethrough). Rules can be overridden per tag, and
whole subtrees can be kept as raw HTML or stripped entirely.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
