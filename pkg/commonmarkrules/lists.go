package commonmarkrules

import (
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerLists wires <ul>, <ol>, and <li> A list nested
// directly inside a list item joins its parent item with a single
// newline instead of the usual blank-line pair, so nesting doesn't
// introduce spurious blank lines between a list item and its sub-list.
func registerLists(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:         "list",
		Filter:      mdconvert.FilterTags("ul", "ol"),
		Replacement: listReplacement,
	})
	rs.AddBuiltin(mdconvert.Rule{
		Key:         "listItem",
		Filter:      mdconvert.FilterTag("li"),
		Replacement: listItemReplacement,
	})
}

func listReplacement(content string, node htmldom.Node, _ *mdconvert.Options) string {
	parent := node.Parent()
	if parent != nil && parent.HasTag("li") && isLastElementChild(parent, node) {
		return "\n" + content
	}
	return "\n\n" + content + "\n\n"
}

func listItemReplacement(content string, node htmldom.Node, opts *mdconvert.Options) string {
	content = strings.TrimPrefix(content, "\n")
	content = strings.TrimRight(content, "\n") + "\n"

	prefix := opts.BulletMarker + "   "
	if parent := node.Parent(); parent != nil && parent.HasTag("ol") {
		start := 1
		if s := parent.Attribute("start"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				start = n
			}
		}
		prefix = strconv.Itoa(start+listItemIndex(node)) + ".  "
	}

	indent := strings.Repeat(" ", len(prefix))
	content = strings.ReplaceAll(content, "\n", "\n"+indent)

	out := prefix + content
	if node.NextSibling() != nil && !strings.HasSuffix(content, "\n") {
		out += "\n"
	}
	return out
}

// listItemIndex returns the zero-based position of node among its
// parent's element children (not just <li> children: stray text nodes
// between items don't increment the count, matching how a browser would
// still number items 1, 2, 3 regardless of insignificant whitespace).
func listItemIndex(node htmldom.Node) int {
	parent := node.Parent()
	if parent == nil {
		return 0
	}
	i := 0
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.ID() == node.ID() {
			return i
		}
		if c.Type() == htmldom.Element {
			i++
		}
	}
	return i
}

func isLastElementChild(parent, node htmldom.Node) bool {
	var last htmldom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == htmldom.Element {
			last = c
		}
	}
	return last != nil && last.ID() == node.ID()
}
