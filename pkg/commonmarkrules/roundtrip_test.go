package commonmarkrules_test

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// parseMarkdown feeds converted output back through goldmark to confirm
// it parses as the Markdown construct the rule claims to emit, not just
// that it contains the right substring.
func parseMarkdown(t *testing.T, source string) ast.Node {
	t.Helper()
	md := goldmark.New()
	reader := text.NewReader([]byte(source))
	return md.Parser().Parse(reader)
}

func countKind(doc ast.Node, kind ast.NodeKind) int {
	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}

func TestRoundTrip_HeadingParsesAsHeadingWithRightLevel(t *testing.T) {
	t.Parallel()

	out := convert(t, "<h2>Section</h2>", nil)
	doc := parseMarkdown(t, out)

	var level int
	var found bool
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			h := n.(*ast.Heading)
			level = h.Level
			found = true
		}
		return ast.WalkContinue, nil
	})
	if !found {
		t.Fatalf("expected goldmark to parse a heading out of %q", out)
	}
	if level != 2 {
		t.Errorf("heading level = %d, want 2", level)
	}
}

func TestRoundTrip_ListParsesWithExpectedItemCount(t *testing.T) {
	t.Parallel()

	out := convert(t, "<ul><li>a</li><li>b</li><li>c</li></ul>", nil)
	doc := parseMarkdown(t, out)

	if got := countKind(doc, ast.KindList); got != 1 {
		t.Fatalf("expected exactly 1 list, goldmark found %d in %q", got, out)
	}
	if got := countKind(doc, ast.KindListItem); got != 3 {
		t.Errorf("expected 3 list items, goldmark found %d in %q", got, out)
	}
}

func TestRoundTrip_OrderedListParsesAsOrdered(t *testing.T) {
	t.Parallel()

	out := convert(t, "<ol><li>a</li><li>b</li></ol>", nil)
	doc := parseMarkdown(t, out)

	var list *ast.List
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindList && list == nil {
			list = n.(*ast.List)
		}
		return ast.WalkContinue, nil
	})
	if list == nil {
		t.Fatalf("expected goldmark to parse a list out of %q", out)
	}
	if !list.IsOrdered() {
		t.Error("expected goldmark to recognize the list as ordered")
	}
}

func TestRoundTrip_BlockquoteParsesAsBlockquote(t *testing.T) {
	t.Parallel()

	out := convert(t, "<blockquote><p>quoted text</p></blockquote>", nil)
	doc := parseMarkdown(t, out)

	if got := countKind(doc, ast.KindBlockquote); got != 1 {
		t.Fatalf("expected exactly 1 blockquote, goldmark found %d in %q", got, out)
	}
}

func TestRoundTrip_FencedCodeBlockParsesWithLanguageInfo(t *testing.T) {
	t.Parallel()

	out := convert(t, `<pre><code class="language-go">x := 1</code></pre>`, func(o *mdconvert.Options) {
		o.CodeBlockStyle = mdconvert.CodeBlockFenced
	})
	doc := parseMarkdown(t, out)

	if got := countKind(doc, ast.KindFencedCodeBlock); got != 1 {
		t.Fatalf("expected exactly 1 fenced code block, goldmark found %d in %q", got, out)
	}
}

func TestRoundTrip_ParagraphTextSurvivesAsText(t *testing.T) {
	t.Parallel()

	out := convert(t, "<p>Hello world</p>", nil)
	doc := parseMarkdown(t, out)

	if got := countKind(doc, ast.KindParagraph); got != 1 {
		t.Fatalf("expected exactly 1 paragraph, goldmark found %d in %q", got, out)
	}
}
