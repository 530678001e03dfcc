package commonmarkrules

import (
	"strings"

	"github.com/yaklabco/htmltomd/pkg/htmldom"
	"github.com/yaklabco/htmltomd/pkg/langdetect"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

// registerCodeBlocks wires <pre>, rendered per Options.CodeBlockStyle.
// Fenced blocks pick a fence one rune longer than the
// longest run of the fence character already present in the content,
// never shorter than three, and attach a language tag read from the
// inner <code>'s "language-*"/"lang-*" class when present, falling back
// to pkg/langdetect when PreformattedCode is false.
func registerCodeBlocks(rs *mdconvert.RuleSet) {
	rs.AddBuiltin(mdconvert.Rule{
		Key:         "codeBlock",
		Filter:      mdconvert.FilterTag("pre"),
		Replacement: codeBlockReplacement,
	})
}

func codeBlockReplacement(content string, node htmldom.Node, opts *mdconvert.Options) string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return ""
	}

	if opts.CodeBlockStyle == mdconvert.CodeBlockFenced {
		return fencedCodeBlock(content, node, opts)
	}
	return indentedCodeBlock(content)
}

func indentedCodeBlock(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}

func fencedCodeBlock(content string, node htmldom.Node, opts *mdconvert.Options) string {
	fenceChar := "`"
	if opts.FenceLiteral != "" {
		fenceChar = opts.FenceLiteral[:1]
	}

	longest := longestRun(content, rune(fenceChar[0]))
	fenceLen := longest + 1
	if fenceLen < 3 {
		fenceLen = 3
	}
	fence := strings.Repeat(fenceChar, fenceLen)

	lang := codeLanguage(node, content, opts)

	return "\n\n" + fence + lang + "\n" + content + "\n" + fence + "\n\n"
}

func codeLanguage(node htmldom.Node, content string, opts *mdconvert.Options) string {
	code := firstChildWithTag(node, "code")
	if code != nil {
		if lang := languageFromClass(code.Attribute("class")); lang != "" {
			return lang
		}
		if lang := code.Attribute("data-language"); lang != "" {
			return lang
		}
	}
	if opts.PreformattedCode {
		return ""
	}
	if lang := langdetect.Detect([]byte(content)); lang != "" && lang != "text" {
		return lang
	}
	return ""
}

func languageFromClass(class string) string {
	for _, tok := range strings.Fields(class) {
		if strings.HasPrefix(tok, "language-") {
			return strings.TrimPrefix(tok, "language-")
		}
		if strings.HasPrefix(tok, "lang-") {
			return strings.TrimPrefix(tok, "lang-")
		}
	}
	return ""
}

func firstChildWithTag(n htmldom.Node, tag string) htmldom.Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.HasTag(tag) {
			return c
		}
	}
	return nil
}

func longestRun(s string, r rune) int {
	longest, run := 0, 0
	for _, c := range s {
		if c == r {
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
