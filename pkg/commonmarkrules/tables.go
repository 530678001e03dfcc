package commonmarkrules

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerTables wires <table> as a GFM pipe table when Options.GFMTables
// is set, an opt-in enrichment beyond strict CommonMark. The rule
// rebuilds rows directly from the node tree rather than from the
// already-reduced content string: cell boundaries don't survive the
// usual chunk-join rules cleanly, since the joiner is built for block
// separation rather than column separation, so each cell's text is read
// straight off TextContent. That trades away inline formatting inside
// cells for a table that's always well-formed, the same simplification
// the wonton-style reference converter this is grounded on makes.
func registerTables(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key: "table",
		Filter: func(node htmldom.Node, opts *mdconvert.Options) bool {
			return opts.GFMTables && node.HasTag("table")
		},
		Replacement: func(_ string, node htmldom.Node, _ *mdconvert.Options) string {
			return renderTable(node)
		},
	})
}

func renderTable(node htmldom.Node) string {
	var rows [][]string
	collectTableRows(node, &rows)
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}
	for i := range rows {
		for len(rows[i]) < cols {
			rows[i] = append(rows[i], "")
		}
	}

	var lines []string
	lines = append(lines, "| "+strings.Join(rows[0], " | ")+" |")

	sep := make([]string, cols)
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range rows[1:] {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}

	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}

func collectTableRows(n htmldom.Node, rows *[][]string) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch {
		case c.HasTag("thead"), c.HasTag("tbody"), c.HasTag("tfoot"):
			collectTableRows(c, rows)
		case c.HasTag("tr"):
			*rows = append(*rows, tableRowCells(c))
		}
	}
}

func tableRowCells(n htmldom.Node) []string {
	var cells []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.HasTag("th") || c.HasTag("td") {
			cell := strings.TrimSpace(strings.ReplaceAll(c.TextContent(), "\n", " "))
			cell = strings.ReplaceAll(cell, "|", "\\|")
			cells = append(cells, cell)
		}
	}
	return cells
}
