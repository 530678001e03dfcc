package mdconvert

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/whitespace"
)

// reducer carries the per-conversion state threaded through Reduce: the
// collapsed-whitespace table and the rule set/options pair. It holds no
// other mutable state of its own — rule-local accumulators (e.g. the
// reference-link table) live inside the rules themselves's
// "model as per-conversion state passed through the rule invocation, not
// as a process-global."
type reducer struct {
	collapsed *whitespace.Collapsed
	rules     *RuleSet
	opts      *Options
}

// Reduce runs the depth-first tree-to-string reduction starting at root,
// followed by the post-processing pass that appends rule trailers.
func Reduce(root htmldom.Node, rules *RuleSet, opts *Options) string {
	r := &reducer{
		collapsed: whitespace.Collapse(root),
		rules:     rules,
		opts:      opts,
	}
	out := r.reduceNode(root)
	return postProcess(out, rules, opts)
}

func (r *reducer) reduceNode(n htmldom.Node) string {
	switch n.Type() {
	case htmldom.Text, htmldom.Whitespace:
		return r.reduceText(n)
	case htmldom.Document:
		return r.reduceChildren(n)
	case htmldom.Element:
		return r.reduceElement(n)
	default:
		return ""
	}
}

func (r *reducer) reduceText(n htmldom.Node) string {
	if r.collapsed.Omit(n) {
		return ""
	}
	text, ok := r.collapsed.Text(n)
	if !ok {
		text = n.Text()
	}
	if classify.HasCodeAncestor(n) {
		return text
	}
	return r.opts.EscapeFunc(text)
}

func (r *reducer) reduceElement(n htmldom.Node) string {
	if r.opts.KeepTags[n.TagName()] {
		content := r.reduceChildren(n)
		return r.opts.KeepReplacement(content, n, r.opts)
	}

	content := r.reduceChildren(n)
	flank := whitespace.Analyze(n, content)
	if flank.Leading != "" || flank.Trailing != "" {
		content = strings.TrimSpace(content)
	}

	rule := r.rules.Resolve(n, r.opts)
	converted := rule.Replacement(content, n, r.opts)

	return flank.Leading + converted + flank.Trailing
}

func (r *reducer) reduceChildren(n htmldom.Node) string {
	var acc string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		acc = Join(acc, r.reduceNode(child))
	}
	return acc
}

// Join implements the chunk joiner: it collapses adjacent
// block separators down to at most one blank line while preserving a
// single newline, by stripping trailing CR/LF from a, leading CR/LF from
// b, and re-joining with max(strippedA, strippedB) newlines capped at 2.
func Join(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}

	left, sa := trimTrailingNewlines(a)
	right, sb := trimLeadingNewlines(b)

	n := sa
	if sb > n {
		n = sb
	}
	if n > 2 {
		n = 2
	}

	return left + strings.Repeat("\n", n) + right
}

func trimTrailingNewlines(s string) (string, int) {
	i := len(s)
	n := 0
	for i > 0 && (s[i-1] == '\n' || s[i-1] == '\r') {
		i--
		n++
	}
	return s[:i], n
}

func trimLeadingNewlines(s string) (string, int) {
	i := 0
	n := 0
	for i < len(s) && (s[i] == '\n' || s[i] == '\r') {
		i++
		n++
	}
	return s[i:], n
}
