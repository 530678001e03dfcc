package commonmarkrules

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerImages wires <img>, rendered as ![alt](src "title") with the
// title clause omitted when absent
func registerImages(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:    "image",
		Filter: mdconvert.FilterTag("img"),
		Replacement: func(_ string, node htmldom.Node, _ *mdconvert.Options) string {
			alt := collapseNewlines(node.Attribute("alt"))
			src := node.Attribute("src")
			if src == "" {
				return ""
			}
			title := cleanTitle(node.Attribute("title"))
			return "![" + alt + "](" + src + title + ")"
		},
	})
}
