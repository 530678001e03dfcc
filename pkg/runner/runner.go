package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/htmltomd/pkg/commonmarkrules"
	"github.com/yaklabco/htmltomd/pkg/config"
	"github.com/yaklabco/htmltomd/pkg/fsutil"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// Runner orchestrates multi-file HTML-to-Markdown conversion.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and converts them concurrently.
// Each worker builds its own mdconvert.Service (and RuleSet) rather than
// sharing one across goroutines: the reference-link rule's accumulator
// is rule-local state that a shared Service would corrupt under
// concurrent Convert calls.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			outcomes[i] = convertOne(gctx, path, workDir, cfg, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil && gctx.Err() != nil {
		for _, outcome := range outcomes {
			if outcome.Path != "" {
				result.accumulate(outcome)
			}
		}
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}

func convertOne(ctx context.Context, path, workDir string, cfg *config.Config, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	html, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	rules := commonmarkrules.New()
	if len(cfg.RemoveTags) > 0 {
		rules.Remove(mdconvert.FilterTags(cfg.RemoveTags...))
	}
	service := mdconvert.NewService(cfg.ToOptions(), rules)

	markdown, err := service.Convert(string(html))
	if err != nil {
		outcome.Error = fmt.Errorf("convert %s: %w", path, err)
		return outcome
	}

	outPath := outputPath(path, workDir, opts.OutputDir)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		outcome.Error = fmt.Errorf("create output dir for %s: %w", path, err)
		return outcome
	}

	if opts.Backup {
		backedUp, err := fsutil.CreateBackup(ctx, outPath, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar})
		if err != nil {
			outcome.Error = fmt.Errorf("back up %s: %w", outPath, err)
			return outcome
		}
		outcome.BackedUp = backedUp
	}

	content := []byte(markdown)
	written, err := fsutil.WriteAtomicIfChanged(ctx, outPath, content, fsutil.DefaultFileMode)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}

	outcome.OutputPath = outPath
	if !written {
		outcome.Skipped = true
		return outcome
	}
	outcome.BytesWritten = len(content)
	return outcome
}

func outputPath(path, workDir, outputDir string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
	if outputDir == "" {
		return base
	}
	rel, err := filepath.Rel(workDir, base)
	if err != nil {
		rel = filepath.Base(base)
	}
	return filepath.Join(outputDir, rel)
}
