package commonmarkrules

import (
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// registerHeadings wires <h1>-<h6>. h1/h2 honor Options.HeadingStyle;
// h3-h6 always render ATX since setext has no three-hash form. A
// heading whose content is all whitespace emits no marker line: blank
// detection routes it to the blank rule before this rule is consulted.
func registerHeadings(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:         "heading",
		Filter:      mdconvert.FilterTags(headingTags...),
		Replacement: headingReplacement,
	})
}

func headingReplacement(content string, node htmldom.Node, opts *mdconvert.Options) string {
	level := headingLevel(node.TagName())
	content = collapseInlineNewlines(content)

	if opts.HeadingStyle == mdconvert.HeadingSetext && level <= 2 {
		underline := "="
		if level == 2 {
			underline = "-"
		}
		return "\n\n" + content + "\n" + strings.Repeat(underline, runeLen(content)) + "\n\n"
	}

	return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
}

func headingLevel(tag string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(tag, "h"))
	return n
}

// collapseInlineNewlines flattens any newline the content picked up from
// a nested block (e.g. a <br> inside a heading) to a single space: a
// setext underline must line up under single-line content, and an ATX
// heading is a single source line.
func collapseInlineNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

func runeLen(s string) int {
	return len([]rune(s))
}
