package commonmarkrules

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerHorizontalRule wires <hr>, rendered as Options.HorizontalRule
// wrapped in a blank-line pair
func registerHorizontalRule(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "horizontalRule",
		Filter: mdconvert.FilterTag("hr"),
		Replacement: func(_ string, _ htmldom.Node, opts *mdconvert.Options) string {
			return "\n\n" + opts.HorizontalRule + "\n\n"
		},
	})
}
