package mdconvert

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

// defaultDefaultReplacement implements the fallback rule:
// block elements get wrapped in a blank-line pair, everything else
// passes its content through unchanged. It is what an unknown tag (or
// an invalid heading level such as <h7>) falls through to
func defaultDefaultReplacement(content string, node htmldom.Node, _ *Options) string {
	if classify.IsBlock(node) {
		return "\n\n" + content + "\n\n"
	}
	return content
}

// defaultBlankReplacement implements the blank rule
func defaultBlankReplacement(_ string, node htmldom.Node, _ *Options) string {
	if classify.IsBlock(node) {
		return "\n\n"
	}
	return ""
}

// defaultKeepReplacement serializes node as raw HTML, recursively
// serializing its children Void elements emit no closing
// tag. Text escapes "& < >"; attribute values additionally escape `"`.
func defaultKeepReplacement(_ string, node htmldom.Node, opts *Options) string {
	if node.Type() != htmldom.Element {
		return escapeHTMLText(node.TextContent())
	}
	return serializeElement(node, opts)
}

func serializeElement(node htmldom.Node, opts *Options) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(node.TagName())
	node.Attributes(func(name, value string) bool {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeHTMLAttr(value))
		b.WriteString(`"`)
		return true
	})
	b.WriteString(">")

	if classify.IsVoid(node) {
		return b.String()
	}

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(serializeNode(c, opts))
	}

	b.WriteString("</")
	b.WriteString(node.TagName())
	b.WriteString(">")
	return b.String()
}

func serializeNode(n htmldom.Node, opts *Options) string {
	switch n.Type() {
	case htmldom.Element:
		return serializeElement(n, opts)
	case htmldom.Text, htmldom.Whitespace:
		return escapeHTMLText(n.Text())
	case htmldom.Comment:
		return "<!--" + n.Text() + "-->"
	default:
		return ""
	}
}

func escapeHTMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeHTMLAttr(s string) string {
	s = escapeHTMLText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
