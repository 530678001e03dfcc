package whitespace

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

// Flanking holds the whitespace hoisted outside an element's Markdown
// delimiters so the delimiters bind tightly to content.
type Flanking struct {
	Leading  string
	Trailing string
}

// Analyze computes the flanking whitespace for n given its already-
// converted subtree text. For block elements and elements nested inside
// a preformatted <code>, there is no flanking whitespace to hoist: the
// element owns its own line structure.
func Analyze(n htmldom.Node, text string) Flanking {
	if classify.IsBlock(n) || (classify.IsPre(n) && classify.HasCodeAncestor(n)) {
		return Flanking{}
	}

	leading, rest := leadingWhitespace(text)
	trailing, _ := trailingWhitespace(rest)

	leading = maybeDropASCII(leading, adjacentText(n.Parent(), n, false))
	trailing = maybeDropASCII(trailing, adjacentText(n, n, true))

	return Flanking{
		Leading:  encodeNBSP(leading),
		Trailing: encodeNBSP(trailing),
	}
}

func leadingWhitespace(s string) (lead, rest string) {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isFlankingSpace(r) {
			break
		}
		i += size
	}
	return s[:i], s[i:]
}

func trailingWhitespace(s string) (trail, rest string) {
	i := len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !isFlankingSpace(r) {
			break
		}
		i -= size
	}
	return s[i:], s[:i]
}

func isFlankingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == 0xA0
}

// maybeDropASCII drops the ASCII-space portion of a leading/trailing
// whitespace run when the adjacent sibling text already supplies an
// ASCII space at that boundary: "If the left sibling
// (respectively right sibling) has ASCII-space-adjacent text ... drop
// the ASCII portion". Non-ASCII (NBSP and similar) whitespace is always
// preserved regardless of the sibling.
func maybeDropASCII(ws string, siblingSuppliesSpace bool) string {
	if ws == "" || !siblingSuppliesSpace {
		return ws
	}
	// Split ws into ASCII-space prefix/suffix vs. the remaining
	// non-ASCII whitespace, in byte order, and drop only the ASCII part.
	var b strings.Builder
	for _, r := range ws {
		if r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// adjacentText reports whether the sibling adjacent to n (previous
// sibling when trailing==false, next sibling when trailing==true)
// supplies an ASCII space immediately at the shared boundary. parent is
// n's parent, used to find the sibling when it is itself n (trailing
// case uses n directly since NextSibling is read off n).
func adjacentText(parentOrSelf htmldom.Node, n htmldom.Node, trailing bool) bool {
	var sib htmldom.Node
	if trailing {
		sib = n.NextSibling()
	} else {
		if parentOrSelf == nil {
			return false
		}
		sib = previousSibling(parentOrSelf, n)
	}
	if sib == nil {
		return false
	}
	if classify.IsBlock(sib) {
		return false
	}
	text := sib.TextContent()
	if text == "" {
		return false
	}
	if trailing {
		r, _ := utf8.DecodeRuneInString(text)
		return r == ' '
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return r == ' '
}

func previousSibling(parent, n htmldom.Node) htmldom.Node {
	var prev htmldom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.ID() == n.ID() {
			return prev
		}
		prev = c
	}
	return nil
}

// encodeNBSP converts bare UTF-8 NBSP code points in s to the literal
// seven-character entity "&nbsp;" so the sequence survives Markdown
// whitespace collapsing when rendered back to HTML.
func encodeNBSP(s string) string {
	if !strings.ContainsRune(s, 0xA0) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == 0xA0 {
			b.WriteString("&nbsp;")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
