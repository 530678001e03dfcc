package mdconvert

import "strings"

// postProcess re-encodes NBSP, invokes every built-in rule's Append in
// iteration order (joining results with Join), re-encodes NBSP again (an
// append may have emitted one), then strips leading newlines and
// trailing ASCII whitespace, but never leading spaces, which preserves
// an indented code block at the very start of the document.
func postProcess(s string, rules *RuleSet, opts *Options) string {
	s = reencodeNBSP(s)

	var trailer string
	for _, r := range rules.BuiltinRules() {
		if r.Append == nil {
			continue
		}
		if part := r.Append(opts); part != "" {
			trailer = Join(trailer, part)
		}
	}
	s = Join(s, trailer)
	s = reencodeNBSP(s)

	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, " \t\r\n")

	return s
}

// reencodeNBSP replaces every literal NBSP (U+00A0) byte sequence in s
// with the seven-character entity "&nbsp;" so it survives downstream
// Markdown whitespace collapsing.
func reencodeNBSP(s string) string {
	if !strings.ContainsRune(s, 0xA0) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == 0xA0 {
			b.WriteString("&nbsp;")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
