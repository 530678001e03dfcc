package commonmarkrules

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerParagraph wires <p>, wrapped in a blank-line pair. An
// all-blank paragraph never reaches this replacement: the blank rule
// intercepts it first.
func registerParagraph(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "paragraph",
		Filter: mdconvert.FilterTag("p"),
		Replacement: func(content string, _ htmldom.Node, _ *mdconvert.Options) string {
			return "\n\n" + content + "\n\n"
		},
	})
}
