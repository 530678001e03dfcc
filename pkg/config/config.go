// Package config defines the YAML-serializable configuration surface for
// htmltomd: a superset of mdconvert.Options that also carries the
// CLI/batch-only settings (output format, concurrency, ignore globs).
// These types are pure data structures with no dependency on Cobra or
// any other CLI framework.
package config

import "github.com/yaklabco/htmltomd/pkg/mdconvert"

// OutputFormat specifies how a batch run reports its results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// Config is the root configuration structure for htmltomd.
type Config struct {
	// HeadingStyle is "setext" or "atx".
	HeadingStyle string `mapstructure:"heading_style" yaml:"heading_style"`

	// HorizontalRule is the literal text emitted for <hr>.
	HorizontalRule string `mapstructure:"horizontal_rule" yaml:"horizontal_rule"`

	// BulletMarker is the literal text prefixing an unordered list item.
	BulletMarker string `mapstructure:"bullet_marker" yaml:"bullet_marker"`

	// CodeBlockStyle is "indented" or "fenced".
	CodeBlockStyle string `mapstructure:"code_block_style" yaml:"code_block_style"`

	// FenceLiteral is the fence character run used when CodeBlockStyle
	// is "fenced" ("```" or "~~~").
	FenceLiteral string `mapstructure:"fence_literal" yaml:"fence_literal"`

	// EmphasisDelim and StrongDelim select the Markdown delimiter for
	// <em>/<i> and <strong>/<b> respectively.
	EmphasisDelim string `mapstructure:"emphasis_delim" yaml:"emphasis_delim"`
	StrongDelim   string `mapstructure:"strong_delim" yaml:"strong_delim"`

	// LinkStyle is "inlined" or "referenced".
	LinkStyle string `mapstructure:"link_style" yaml:"link_style"`

	// ReferenceStyle is "full", "collapsed", or "shortcut" and only
	// applies when LinkStyle is "referenced".
	ReferenceStyle string `mapstructure:"reference_style" yaml:"reference_style"`

	// PreformattedCode disables language auto-detection for fenced code
	// blocks, emitting a bare fence when no "language-*" class is present.
	PreformattedCode bool `mapstructure:"preformatted_code" yaml:"preformatted_code"`

	// GFMTables and Strikethrough enable the two opt-in, non-CommonMark
	// rule families. Both default false.
	GFMTables     bool `mapstructure:"gfm_tables" yaml:"gfm_tables"`
	Strikethrough bool `mapstructure:"strikethrough" yaml:"strikethrough"`

	// KeepTags lists element tag names serialized as raw HTML instead of
	// converted, per mdconvert.Options.KeepTags.
	KeepTags []string `mapstructure:"keep_tags" yaml:"keep_tags"`

	// RemoveTags lists element tag names the batch runner drops together
	// with their content. It applies only to elements that no built-in
	// rule converts: a listed tag such as p or a is still converted.
	RemoveTags []string `mapstructure:"remove_tags" yaml:"remove_tags"`

	// Ignore contains glob patterns for files a batch run should skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies how batch results are reported.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel conversion workers.
	// 0 means one worker per CPU (runtime.NumCPU()).
	Jobs int `mapstructure:"-" yaml:"-"`

	// OutputDir, when non-empty, mirrors input files into this directory
	// with a ".md" extension instead of writing alongside each input.
	OutputDir string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config matching mdconvert.NewOptions()'s defaults.
func NewConfig() *Config {
	defaults := mdconvert.NewOptions()
	return &Config{
		HeadingStyle:     string(defaults.HeadingStyle),
		HorizontalRule:   defaults.HorizontalRule,
		BulletMarker:     defaults.BulletMarker,
		CodeBlockStyle:   string(defaults.CodeBlockStyle),
		FenceLiteral:     defaults.FenceLiteral,
		EmphasisDelim:    defaults.EmphasisDelim,
		StrongDelim:      defaults.StrongDelim,
		LinkStyle:        string(defaults.LinkStyle),
		ReferenceStyle:   string(defaults.ReferenceStyle),
		PreformattedCode: defaults.PreformattedCode,
		Format:           FormatText,
		Jobs:             0,
	}
}

// ToOptions builds an *mdconvert.Options reflecting c. Empty strings
// keep the mdconvert default for that field; non-empty style strings are
// copied through unchecked and produce no error (an unrecognized heading
// style, for example, renders as ATX).
func (c *Config) ToOptions() *mdconvert.Options {
	opts := mdconvert.NewOptions()

	if c.HeadingStyle != "" {
		opts.HeadingStyle = mdconvert.HeadingStyle(c.HeadingStyle)
	}
	if c.HorizontalRule != "" {
		opts.HorizontalRule = c.HorizontalRule
	}
	if c.BulletMarker != "" {
		opts.BulletMarker = c.BulletMarker
	}
	if c.CodeBlockStyle != "" {
		opts.CodeBlockStyle = mdconvert.CodeBlockStyle(c.CodeBlockStyle)
	}
	if c.FenceLiteral != "" {
		opts.FenceLiteral = c.FenceLiteral
	}
	if c.EmphasisDelim != "" {
		opts.EmphasisDelim = c.EmphasisDelim
	}
	if c.StrongDelim != "" {
		opts.StrongDelim = c.StrongDelim
	}
	if c.LinkStyle != "" {
		opts.LinkStyle = mdconvert.LinkStyle(c.LinkStyle)
	}
	if c.ReferenceStyle != "" {
		opts.ReferenceStyle = mdconvert.ReferenceStyle(c.ReferenceStyle)
	}
	opts.PreformattedCode = c.PreformattedCode
	opts.GFMTables = c.GFMTables
	opts.Strikethrough = c.Strikethrough

	for _, tag := range c.KeepTags {
		opts.KeepTags[tag] = true
	}

	return opts
}
