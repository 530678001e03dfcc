package htmldom

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"golang.org/x/net/html"
)

// ErrParse is wrapped by Parse when the underlying parser cannot produce
// a document. It is the core's one failure mode.
type ErrParse struct {
	Err error
}

func (e *ErrParse) Error() string { return fmt.Sprintf("htmldom: parse: %v", e.Err) }
func (e *ErrParse) Unwrap() error { return e.Err }

// adapterNode wraps a *html.Node to satisfy Node. The wrapper is created
// lazily and is not cached: identity is derived from the address of the
// underlying *html.Node, which x/net/html guarantees is stable for the
// lifetime of the parsed tree, not from the wrapper itself.
type adapterNode struct {
	n *html.Node
}

// ParseString parses an HTML document from a string and returns its root
// node wrapped for the core. Parsing errors are the only failure mode
// the core exposes to callers.
func ParseString(s string) (Node, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader parses an HTML document from an io.Reader.
func ParseReader(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, &ErrParse{Err: err}
	}
	return Wrap(doc), nil
}

// Document returns the engine's default starting node for a parsed
// document: the <body> element, falling back to the root <html> element,
// falling back to the parsed root itself.
func Document(root Node) Node {
	an, ok := root.(adapterNode)
	if !ok {
		return root
	}
	if body := findFirst(an.n, "body"); body != nil {
		return Wrap(body)
	}
	if htmlEl := findFirst(an.n, "html"); htmlEl != nil {
		return Wrap(htmlEl)
	}
	return root
}

func findFirst(n *html.Node, tag string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
			if found != nil {
				return
			}
		}
	}
	walk(n)
	return found
}

// Wrap adapts a *html.Node from golang.org/x/net/html into the core's
// Node interface.
func Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return adapterNode{n: n}
}

func (a adapterNode) Type() Type {
	switch a.n.Type {
	case html.DocumentNode:
		return Document
	case html.ElementNode:
		return Element
	case html.TextNode:
		if strings.TrimSpace(a.n.Data) == "" && a.n.Data != "" {
			return Whitespace
		}
		return Text
	case html.CommentNode:
		return Comment
	case html.DoctypeNode:
		return Unknown
	default:
		return Unknown
	}
}

func (a adapterNode) Parent() Node      { return Wrap(a.n.Parent) }
func (a adapterNode) NextSibling() Node { return Wrap(a.n.NextSibling) }
func (a adapterNode) FirstChild() Node  { return Wrap(a.n.FirstChild) }

func (a adapterNode) TagName() string {
	if a.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(a.n.Data)
}

func (a adapterNode) HasTag(name string) bool {
	return a.n.Type == html.ElementNode && strings.EqualFold(a.n.Data, name)
}

func (a adapterNode) Attribute(name string) string {
	for _, attr := range a.n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val
		}
	}
	return ""
}

func (a adapterNode) Attributes(yield func(name, value string) bool) {
	for _, attr := range a.n.Attr {
		if !yield(attr.Key, attr.Val) {
			return
		}
	}
}

func (a adapterNode) Text() string {
	switch a.n.Type {
	case html.TextNode, html.CommentNode:
		return a.n.Data
	default:
		return ""
	}
}

func (a adapterNode) TextContent() string {
	var sb strings.Builder
	collectText(a.n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func (a adapterNode) ID() ID {
	return ID(uintptr(unsafe.Pointer(a.n)))
}
