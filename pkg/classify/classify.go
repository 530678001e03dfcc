// Package classify implements the pure node-classification predicates
// the conversion core uses to decide how whitespace and rules apply to
// an element: block vs. inline, void, preformatted, inside <code>, and
// "meaningful when blank". The tag sets are closed, so membership is a
// sorted-slice binary search rather than a map.
package classify

import (
	"slices"
	"unicode"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

// blockTags lists elements treated as block-level for whitespace
// collapsing and default-rule wrapping purposes.
var blockTags = sortedSet(
	"address", "article", "aside", "audio", "blockquote", "body", "canvas",
	"center", "dd", "dir", "div", "dl", "dt", "fieldset", "figcaption",
	"figure", "footer", "form", "frameset", "h1", "h2", "h3", "h4", "h5",
	"h6", "header", "hgroup", "hr", "html", "isindex", "li", "main", "menu",
	"nav", "noframes", "noscript", "ol", "output", "p", "pre", "section",
	"table", "tbody", "td", "tfoot", "th", "thead", "tr", "ul",
)

// voidTags lists elements that never have children/closing tags.
var voidTags = sortedSet(
	"area", "base", "br", "col", "command", "embed", "hr", "img", "input",
	"keygen", "link", "meta", "param", "source", "track", "wbr",
)

// meaningfulWhenBlankTags lists elements that contribute meaning even
// with no visible text, so a "blank" check must never fold them away.
var meaningfulWhenBlankTags = sortedSet(
	"a", "table", "thead", "tbody", "tfoot", "th", "td", "iframe",
	"script", "audio", "video",
)

func sortedSet(tags ...string) []string {
	slices.Sort(tags)
	return tags
}

func in(set []string, tag string) bool {
	_, found := slices.BinarySearch(set, tag)
	return found
}

// IsBlock reports whether n is a block-level element.
func IsBlock(n htmldom.Node) bool {
	return n.Type() == htmldom.Element && in(blockTags, n.TagName())
}

// IsVoid reports whether n is a void element (no children, no closing tag).
func IsVoid(n htmldom.Node) bool {
	return n.Type() == htmldom.Element && in(voidTags, n.TagName())
}

// IsPre reports whether n is a <pre> element.
func IsPre(n htmldom.Node) bool {
	return n.Type() == htmldom.Element && n.HasTag("pre")
}

// HasCodeAncestor reports whether n, or any of its ancestors, is a
// <code> element.
func HasCodeAncestor(n htmldom.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == htmldom.Element && cur.HasTag("code") {
			return true
		}
	}
	return false
}

// IsMeaningfulWhenBlank reports whether n contributes meaning to the
// document even when its collected text is empty or all whitespace.
func IsMeaningfulWhenBlank(n htmldom.Node) bool {
	return n.Type() == htmldom.Element && in(meaningfulWhenBlankTags, n.TagName())
}

// HasMeaningfulWhenBlankDescendant reports whether any descendant of n
// matches IsMeaningfulWhenBlank.
func HasMeaningfulWhenBlankDescendant(n htmldom.Node) bool {
	return anyDescendant(n, IsMeaningfulWhenBlank)
}

// HasVoidDescendant reports whether any descendant of n matches IsVoid.
func HasVoidDescendant(n htmldom.Node) bool {
	return anyDescendant(n, IsVoid)
}

func anyDescendant(n htmldom.Node, pred func(htmldom.Node) bool) bool {
	found := false
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		htmldom.Walk(c, func(d htmldom.Node) bool {
			if pred(d) {
				found = true
				return false
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// isUnicodeWhitespaceOnly reports whether s contains only Unicode
// whitespace (used by IsBlank below; Unicode, not just ASCII).
func isUnicodeWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && r != 0xA0 {
			return false
		}
	}
	return true
}

// IsBlank reports whether an element is blank: not void, not
// meaningful-when-blank, its collected text is only Unicode whitespace,
// and it has no void or meaningful-when-blank descendant. Void elements
// and non-element nodes are never blank.
func IsBlank(n htmldom.Node) bool {
	if n.Type() != htmldom.Element {
		return false
	}
	if IsVoid(n) || IsMeaningfulWhenBlank(n) {
		return false
	}
	if !isUnicodeWhitespaceOnly(n.TextContent()) {
		return false
	}
	if HasVoidDescendant(n) || HasMeaningfulWhenBlankDescendant(n) {
		return false
	}
	return true
}
