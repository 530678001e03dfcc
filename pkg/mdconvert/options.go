// Package mdconvert is the conversion engine: Options, the Rule type and
// RuleSet resolution, the reducer and chunk joiner, and escape
// discipline. Rule bodies implementing the CommonMark rule set itself
// live in pkg/commonmarkrules; this package only defines the machinery
// those rules plug into.
package mdconvert

import "github.com/yaklabco/htmltomd/pkg/htmldom"

// HeadingStyle selects how h1/h2 (and h3-h6) are rendered.
type HeadingStyle string

const (
	HeadingSetext HeadingStyle = "setext"
	HeadingATX    HeadingStyle = "atx"
)

// CodeBlockStyle selects how a <pre><code> block is rendered.
type CodeBlockStyle string

const (
	CodeBlockIndented CodeBlockStyle = "indented"
	CodeBlockFenced   CodeBlockStyle = "fenced"
)

// LinkStyle selects how <a href> is rendered.
type LinkStyle string

const (
	LinkInlined    LinkStyle = "inlined"
	LinkReferenced LinkStyle = "referenced"
)

// ReferenceStyle selects the shape of a referenced-style link.
type ReferenceStyle string

const (
	ReferenceFull      ReferenceStyle = "full"
	ReferenceCollapsed ReferenceStyle = "collapsed"
	ReferenceShortcut  ReferenceStyle = "shortcut"
)

// EscapeFunc escapes Markdown-significant characters in text content.
type EscapeFunc func(text string) string

// ReplacementFunc computes the replacement rule's output. Used for the
// blank/keep/default distinguished rules.
type ReplacementFunc func(content string, node htmldom.Node, opts *Options) string

// Options is the configuration record The zero
// value is never used directly; call NewOptions for the documented
// defaults.
type Options struct {
	HeadingStyle     HeadingStyle
	HorizontalRule   string
	BulletMarker     string
	CodeBlockStyle   CodeBlockStyle
	FenceLiteral     string
	EmphasisDelim    string
	StrongDelim      string
	LinkStyle        LinkStyle
	ReferenceStyle   ReferenceStyle
	LineBreakLiteral string
	PreformattedCode bool
	EscapeFunc       EscapeFunc
	KeepTags         map[string]bool

	BlankReplacement   ReplacementFunc
	KeepReplacement    ReplacementFunc
	DefaultReplacement ReplacementFunc

	// GFMTables and Strikethrough enable the two opt-in, non-CommonMark
	// rule families Both default false so
	// out-of-the-box behavior stays strict CommonMark as spec.md
	// describes.
	GFMTables     bool
	Strikethrough bool
}

// NewOptions returns the documented defaults
func NewOptions() *Options {
	o := &Options{
		HeadingStyle:     HeadingSetext,
		HorizontalRule:   "* * *",
		BulletMarker:     "*",
		CodeBlockStyle:   CodeBlockIndented,
		FenceLiteral:     "```",
		EmphasisDelim:    "_",
		StrongDelim:      "**",
		LinkStyle:        LinkInlined,
		ReferenceStyle:   ReferenceFull,
		LineBreakLiteral: "  ",
		PreformattedCode: false,
		EscapeFunc:       AdvancedEscape,
		KeepTags:         map[string]bool{},
	}
	o.BlankReplacement = defaultBlankReplacement
	o.KeepReplacement = defaultKeepReplacement
	o.DefaultReplacement = defaultDefaultReplacement
	return o
}
