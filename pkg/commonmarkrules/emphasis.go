package commonmarkrules

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerEmphasis wires <em>/<i> and <strong>/<b>, wrapped in
// Options.EmphasisDelim / Options.StrongDelim respectively. Empty or
// all-whitespace content is left unwrapped: an empty delimiter pair is
// not meaningful Markdown. A blank element never reaches this rule (the
// blank rule takes it first); the guard covers content that is empty
// only after conversion.
func registerEmphasis(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "emphasis",
		Filter: mdconvert.FilterTags("em", "i"),
		Replacement: func(content string, _ htmldom.Node, opts *mdconvert.Options) string {
			return wrapDelim(content, opts.EmphasisDelim)
		},
	})
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "strong",
		Filter: mdconvert.FilterTags("strong", "b"),
		Replacement: func(content string, _ htmldom.Node, opts *mdconvert.Options) string {
			return wrapDelim(content, opts.StrongDelim)
		},
	})
}

func wrapDelim(content, delim string) string {
	if strings.TrimSpace(content) == "" {
		return content
	}
	return delim + content + delim
}
