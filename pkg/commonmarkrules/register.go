// Package commonmarkrules is the built-in CommonMark rule factory: one
// file per Markdown construct (headings.go, lists.go, links.go,
// code_blocks.go, and friends). Each rule inspects an HTML node and
// produces the Markdown replacement for it.
package commonmarkrules

import "github.com/yaklabco/htmltomd/pkg/mdconvert"

// New builds the built-in CommonMark RuleSet. Callers add their own
// user rules, keep/remove filters on top via the returned RuleSet's
// AddUserRule/Keep/Remove methods.
func New() *mdconvert.RuleSet {
	rs := mdconvert.NewRuleSet()

	registerParagraph(rs)
	registerLineBreak(rs)
	registerHeadings(rs)
	registerBlockquote(rs)
	registerLists(rs)
	registerCodeBlocks(rs)
	registerHorizontalRule(rs)
	registerEmphasis(rs)
	registerInlineCode(rs)
	registerLinks(rs)
	registerImages(rs)
	registerTables(rs)
	registerStrikethrough(rs)

	return rs
}
