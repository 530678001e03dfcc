package whitespace_test

import (
	"testing"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/whitespace"
)

func mustParse(t *testing.T, s string) htmldom.Node {
	t.Helper()
	root, err := htmldom.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	return root
}

func textNodes(root htmldom.Node) []htmldom.Node {
	var out []htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if n.Type() == htmldom.Text || n.Type() == htmldom.Whitespace {
			out = append(out, n)
		}
		return true
	})
	return out
}

func TestCollapse_RunsOfSpaceBecomeSingleSpace(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<p>a   b\n\tc</p>")
	collapsed := whitespace.Collapse(root)

	var got string
	for _, n := range textNodes(root) {
		if s, ok := collapsed.Text(n); ok {
			got += s
		}
	}
	if got != "a b c" {
		t.Errorf("collapsed text = %q, want %q", got, "a b c")
	}
}

func TestCollapse_LeadingSpaceAfterBlockIsDropped(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<div>x</div> leading")
	collapsed := whitespace.Collapse(root)

	for _, n := range textNodes(root) {
		s, ok := collapsed.Text(n)
		if !ok {
			continue
		}
		if s != "leading" && s != "leading " {
			t.Errorf("text after block = %q, expected leading space stripped", s)
		}
	}
}

func TestCollapse_TrailingSpaceBeforeBlockIsTrimmed(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<p>trailing </p><div>x</div>")
	collapsed := whitespace.Collapse(root)

	var p htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if p == nil && n.HasTag("p") {
			p = n
		}
		return true
	})
	if p == nil {
		t.Fatal("expected to find <p>")
	}

	var textInP string
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		if s, ok := collapsed.Text(c); ok {
			textInP += s
		}
	}
	if textInP != "trailing" {
		t.Errorf("text in <p> = %q, want %q (trailing space trimmed at end of walk/before block)", textInP, "trailing")
	}
}

func TestCollapse_PreContentsUntouched(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<pre>  keep   this  \n  spacing</pre>")
	collapsed := whitespace.Collapse(root)

	var preChild htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if n.HasTag("pre") {
			preChild = n.FirstChild()
			return false
		}
		return true
	})
	if preChild == nil {
		t.Fatal("expected <pre> to have a text child")
	}
	if _, ok := collapsed.Text(preChild); ok {
		t.Error("expected the collapser to never visit <pre> children, so no replacement should be recorded")
	}
}

func TestCollapse_WhitespaceOnlyNodeOmitted(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<div>a</div>\n\t<div>b</div>")
	collapsed := whitespace.Collapse(root)

	var omittedSeen bool
	for _, n := range textNodes(root) {
		if collapsed.Omit(n) {
			omittedSeen = true
		}
	}
	if !omittedSeen {
		t.Error("expected the inter-block whitespace-only text node to be omitted")
	}
}

func TestAnalyze_BlockElementHasNoFlanking(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<div>text</div>")
	var div htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if div == nil && n.HasTag("div") {
			div = n
		}
		return true
	})

	flank := whitespace.Analyze(div, " text ")
	if flank.Leading != "" || flank.Trailing != "" {
		t.Errorf("expected no flanking whitespace for a block element, got %+v", flank)
	}
}

func TestAnalyze_InlineElementHoistsFlankingWhitespace(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<p>a<em>b</em>c</p>")
	var em htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if em == nil && n.HasTag("em") {
			em = n
		}
		return true
	})
	if em == nil {
		t.Fatal("expected to find <em>")
	}

	flank := whitespace.Analyze(em, "b")
	if flank.Leading != "" || flank.Trailing != "" {
		t.Errorf("expected no hoisted whitespace when converted text has none, got %+v", flank)
	}

	flank2 := whitespace.Analyze(em, " b ")
	if flank2.Leading == "" && flank2.Trailing == "" {
		t.Error("expected some flanking whitespace to be hoisted from padded inline text")
	}
}

func TestAnalyze_NBSPIsEncodedInHoistedWhitespace(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<p><em>b</em></p>")
	var em htmldom.Node
	htmldom.Walk(root, func(n htmldom.Node) bool {
		if em == nil && n.HasTag("em") {
			em = n
		}
		return true
	})

	flank := whitespace.Analyze(em, " b ")
	if flank.Leading != "&nbsp;" {
		t.Errorf("Leading = %q, want %q", flank.Leading, "&nbsp;")
	}
	if flank.Trailing != "&nbsp;" {
		t.Errorf("Trailing = %q, want %q", flank.Trailing, "&nbsp;")
	}
}
