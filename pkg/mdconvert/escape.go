package mdconvert

import (
	"regexp"
	"strings"
)

var (
	leadingDigitsDot = regexp.MustCompile(`^(\d+)(\. )`)
	leadingHashes    = regexp.MustCompile(`^(#{1,6} )`)
	leadingEquals    = regexp.MustCompile(`^(=+)`)
)

// AdvancedEscape is the default escape function: it escapes
// every Markdown-significant character, plus line-leading sequences that
// would otherwise be reparsed as block syntax.
func AdvancedEscape(text string) string {
	s := text
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `*`, `\*`)
	if strings.HasPrefix(s, "-") {
		s = `\` + s
	}
	if strings.HasPrefix(s, "+ ") {
		s = `\` + s
	}
	if leadingEquals.MatchString(s) {
		s = `\` + s
	}
	if leadingHashes.MatchString(s) {
		s = `\` + s
	}
	s = strings.ReplaceAll(s, "`", "\\`")
	if strings.HasPrefix(s, "~~~") {
		s = `\` + s
	}
	s = strings.ReplaceAll(s, `[`, `\[`)
	s = strings.ReplaceAll(s, `]`, `\]`)
	if strings.HasPrefix(s, ">") {
		s = `\` + s
	}
	s = strings.ReplaceAll(s, `_`, `\_`)
	s = leadingDigitsDot.ReplaceAllString(s, `$1\$2`)
	return s
}

// MinimalEscape escapes only the three characters that are unsafe in
// every Markdown context: backslash, and the link-syntax brackets.
func MinimalEscape(text string) string {
	s := strings.ReplaceAll(text, `\`, `\\`)
	s = strings.ReplaceAll(s, `[`, `\[`)
	s = strings.ReplaceAll(s, `]`, `\]`)
	return s
}
