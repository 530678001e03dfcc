package commonmarkrules

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerStrikethrough wires <del>, <s>, and <strike> as GFM `~~`
// strikethrough when Options.Strikethrough is set, mirroring how the
// wonton-style reference converter groups the same three tags under one
// handler.
func registerStrikethrough(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key: "strikethrough",
		Filter: func(node htmldom.Node, opts *mdconvert.Options) bool {
			return opts.Strikethrough && (node.HasTag("del") || node.HasTag("s") || node.HasTag("strike"))
		},
		Replacement: func(content string, _ htmldom.Node, _ *mdconvert.Options) string {
			return wrapDelim(content, "~~")
		},
	})
}
