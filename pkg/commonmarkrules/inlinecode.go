package commonmarkrules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

var crlfRun = regexp.MustCompile(`[\r\n]+`)

// registerInlineCode wires <code> except when it is alone inside a
// <pre> (the code-block rule owns that case). The backtick run
// wrapping content is one longer than the longest run of backticks
// already present in the content, and a leading/trailing space pads
// the span when content starts with a backtick (so the delimiter isn't
// swallowed) or when content is fully surrounded by spaces on both
// ends.
func registerInlineCode(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key: "inlineCode",
		Filter: func(node htmldom.Node, _ *mdconvert.Options) bool {
			return node.HasTag("code") && !isCodeBlockAlone(node)
		},
		Replacement: func(content string, _ htmldom.Node, _ *mdconvert.Options) string {
			content = crlfRun.ReplaceAllString(content, " ")
			fence := strings.Repeat("`", longestBacktickRun(content)+1)
			pad := ""
			if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") ||
				(strings.HasPrefix(content, " ") && strings.HasSuffix(content, " ")) {
				pad = " "
			}
			return fence + pad + content + pad + fence
		},
	})
}

// isCodeBlockAlone reports whether node is a <code> that is the sole
// child of a <pre> parent, the case the code-block rule owns instead.
func isCodeBlockAlone(n htmldom.Node) bool {
	parent := n.Parent()
	if parent == nil || !classify.IsPre(parent) {
		return false
	}
	if n.NextSibling() != nil {
		return false
	}
	first := parent.FirstChild()
	return first != nil && first.ID() == n.ID()
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
