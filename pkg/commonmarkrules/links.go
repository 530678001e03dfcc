package commonmarkrules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

var newlineRun = regexp.MustCompile(`(\n+\s*)+`)

// collapseNewlines flattens an attribute value's embedded newline runs
// (and any whitespace riding along with them) down to a single "\n", so
// a title or alt text that wraps across source lines doesn't leak raw
// line breaks into the generated Markdown.
func collapseNewlines(s string) string {
	return newlineRun.ReplaceAllString(s, "\n")
}

// refAccumulator is the rule-local state backing the referenced-style
// link rule: one per RuleSet built by New, reset by its
// own Append after each conversion. Two conversions sharing a RuleSet
// would race on this state, which is exactly why mdconvert.Service
// documents one Service per goroutine.
type refAccumulator struct {
	entries []string
}

func (a *refAccumulator) append(_ *mdconvert.Options) string {
	if len(a.entries) == 0 {
		return ""
	}
	out := strings.Join(a.entries, "\n")
	a.entries = nil
	return out
}

// registerLinks wires <a href>. An anchor without an href (a bookmark
// target) isn't matched here and falls through to the default rule,
// which passes its content through unchanged.
func registerLinks(rs *mdconvert.RuleSet) {
	acc := &refAccumulator{}
	rs.AddBuiltin(mdconvert.Rule{
		Key: "link",
		Filter: func(node htmldom.Node, _ *mdconvert.Options) bool {
			return node.HasTag("a") && node.Attribute("href") != ""
		},
		Replacement: func(content string, node htmldom.Node, opts *mdconvert.Options) string {
			return linkReplacement(acc, content, node, opts)
		},
		Append: acc.append,
	})
}

func linkReplacement(acc *refAccumulator, content string, node htmldom.Node, opts *mdconvert.Options) string {
	href := node.Attribute("href")
	title := cleanTitle(node.Attribute("title"))

	if content == "" {
		return ""
	}

	if opts.LinkStyle == mdconvert.LinkInlined {
		if href == content && title == "" {
			return "<" + href + ">"
		}
		return "[" + content + "](" + escapeHrefParens(href) + title + ")"
	}

	switch opts.ReferenceStyle {
	case mdconvert.ReferenceCollapsed:
		acc.entries = append(acc.entries, "["+content+"]: "+href+title)
		return "[" + content + "][]"
	case mdconvert.ReferenceShortcut:
		acc.entries = append(acc.entries, "["+content+"]: "+href+title)
		return "[" + content + "]"
	default:
		id := strconv.Itoa(len(acc.entries) + 1)
		acc.entries = append(acc.entries, "["+id+"]: "+href+title)
		return "[" + content + "][" + id + "]"
	}
}

func cleanTitle(title string) string {
	if title == "" {
		return ""
	}
	title = collapseNewlines(title)
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

// escapeHrefParens backslash-escapes parentheses in href so they can't
// be mistaken for the closing paren of the inline link's own
// destination, e.g. http://example.com?(query) as the bracket form's
// target.
func escapeHrefParens(href string) string {
	href = strings.ReplaceAll(href, "(", "\\(")
	href = strings.ReplaceAll(href, ")", "\\)")
	return href
}
