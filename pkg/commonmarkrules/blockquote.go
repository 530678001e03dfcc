package commonmarkrules

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerBlockquote wires <blockquote>: every line of the reduced
// content is prefixed with "> ", and the whole block is wrapped in a
// blank-line pair Nesting falls out for free — a nested
// blockquote's own "> " prefixing happens before its parent's, so the
// parent sees already-prefixed lines and prefixes them again.
func registerBlockquote(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "blockquote",
		Filter: mdconvert.FilterTag("blockquote"),
		Replacement: func(content string, _ htmldom.Node, _ *mdconvert.Options) string {
			content = strings.Trim(content, "\n")
			lines := strings.Split(content, "\n")
			for i, line := range lines {
				if line == "" {
					lines[i] = ">"
					continue
				}
				lines[i] = "> " + line
			}
			return "\n\n" + strings.Join(lines, "\n") + "\n\n"
		},
	})
}
