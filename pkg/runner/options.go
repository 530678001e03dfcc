// Package runner provides multi-file HTML-to-Markdown conversion
// orchestration: directory discovery plus a concurrent worker pool that
// constructs one mdconvert.Service per goroutine.
package runner

import "github.com/yaklabco/htmltomd/pkg/config"

// Options controls multi-file conversion behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered HTML. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// OutputDir, when non-empty, mirrors each input's relative path into
	// this directory with a ".md" extension. When empty, each output is
	// written alongside its input.
	OutputDir string

	// Config carries the conversion options for this run. Nil selects
	// config.NewConfig()'s defaults.
	Config *config.Config

	// Backup creates a sidecar backup of an existing output file before
	// it is overwritten with different content.
	Backup bool
}

// DefaultExtensions returns the default set of HTML file extensions.
func DefaultExtensions() []string {
	return []string{".html", ".htm"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
