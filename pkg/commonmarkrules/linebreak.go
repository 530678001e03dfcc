package commonmarkrules

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerLineBreak wires <br>, rendered as Options.LineBreakLiteral (two
// trailing spaces by default) followed by a newline
func registerLineBreak(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "lineBreak",
		Filter: mdconvert.FilterTag("br"),
		Replacement: func(_ string, _ htmldom.Node, opts *mdconvert.Options) string {
			return opts.LineBreakLiteral + "\n"
		},
	})
}
