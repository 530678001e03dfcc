// Package whitespace implements the single depth-first pass that
// simulates a browser's inline whitespace normalization and the
// per-node flanking-whitespace analysis used to decide emphasis
// delimiter placement. Neither ever mutates the DOM; the collapser's
// output is a side-table keyed by node identity, caching parsed state
// alongside an immutable tree.
package whitespace

import (
	"regexp"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

var runsOfHTMLSpace = regexp.MustCompile(`[ \r\n\t]+`)

// Collapsed is the result of one collapser pass over a tree: a
// replacement table for text-like nodes that survive collapsing, and the
// set of nodes collapsed down to nothing. Lifetime is one conversion
// call.
type Collapsed struct {
	replacement map[htmldom.ID]string
	omit        map[htmldom.ID]bool
}

// Text returns the collapsed replacement text for a text-like node, and
// whether one was recorded (false for element nodes, or for nodes the
// walk never visited — e.g. children of a preformatted root).
func (c *Collapsed) Text(n htmldom.Node) (string, bool) {
	s, ok := c.replacement[n.ID()]
	return s, ok
}

// Omit reports whether the node was collapsed down to the empty string
// and should be treated as producing no output.
func (c *Collapsed) Omit(n htmldom.Node) bool {
	return c.omit[n.ID()]
}

// collapseState is the mutable cursor threaded through the walk.
type collapseState struct {
	prevTextID    htmldom.ID
	hasPrevText   bool
	prevEndsSpace bool
	keepLeading   bool
}

// Collapse runs the whitespace collapser over root and returns the
// resulting replacement table. Root is never modified when
// it is itself preformatted: in that case the walk still enters root (to
// classify it) but never descends into its children.
func Collapse(root htmldom.Node) *Collapsed {
	c := &Collapsed{
		replacement: make(map[htmldom.ID]string),
		omit:        make(map[htmldom.ID]bool),
	}
	st := &collapseState{}
	walk(root, st, c)
	// At walk end, strip any trailing space still present on the last
	// text node touched.
	if st.hasPrevText {
		trimTrailingSpace(st.prevTextID, c)
	}
	return c
}

func walk(n htmldom.Node, st *collapseState, c *Collapsed) {
	switch n.Type() {
	case htmldom.Text, htmldom.Whitespace:
		visitText(n, st, c)
		return
	case htmldom.Element:
		visitElementEnter(n, st, c)
	}

	if classify.IsPre(n) {
		// Preformatted elements are never descended into: their
		// children keep their original text verbatim.
		return
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		walk(child, st, c)
	}
}

func visitText(n htmldom.Node, st *collapseState, c *Collapsed) {
	text := runsOfHTMLSpace.ReplaceAllString(n.Text(), " ")

	dropLeading := (!st.hasPrevText || st.prevEndsSpace) && !st.keepLeading &&
		strings.HasPrefix(text, " ")
	if dropLeading {
		text = text[1:]
	}

	if text == "" {
		c.omit[n.ID()] = true
		return
	}

	c.replacement[n.ID()] = text
	st.prevTextID = n.ID()
	st.hasPrevText = true
	st.prevEndsSpace = strings.HasSuffix(text, " ")
	st.keepLeading = false
}

func visitElementEnter(n htmldom.Node, st *collapseState, c *Collapsed) {
	switch {
	case classify.IsBlock(n) || n.HasTag("br"):
		if st.hasPrevText {
			trimTrailingSpace(st.prevTextID, c)
		}
		st.hasPrevText = false
		st.prevEndsSpace = false
		st.keepLeading = false
	case classify.IsVoid(n) || classify.IsPre(n):
		st.hasPrevText = false
		st.prevEndsSpace = false
		st.keepLeading = true
	default:
		st.keepLeading = false
	}
}

// trimTrailingSpace removes one trailing ASCII space from the replacement
// recorded for id, omitting the node entirely if that empties it.
func trimTrailingSpace(id htmldom.ID, c *Collapsed) {
	s, ok := c.replacement[id]
	if !ok || !strings.HasSuffix(s, " ") {
		return
	}
	s = s[:len(s)-1]
	if s == "" {
		delete(c.replacement, id)
		c.omit[id] = true
		return
	}
	c.replacement[id] = s
}
