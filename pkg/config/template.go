package config

import "bytes"

// DefaultTemplateHeader returns the header for generated config files.
func DefaultTemplateHeader() string {
	return `# htmltomd configuration
# See: https://github.com/yaklabco/htmltomd`
}

// GenerateTemplate creates a commented configuration file template
// reflecting NewConfig()'s defaults.
func GenerateTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# htmltomd configuration
# See: https://github.com/yaklabco/htmltomd

# Heading style: setext (default) or atx
heading_style: setext

# Literal text for a horizontal rule
horizontal_rule: "* * *"

# Literal marker prefixing an unordered list item
bullet_marker: "*"

# Code block style: indented (default) or fenced
code_block_style: indented

# Fence run used when code_block_style is fenced
fence_literal: "` + "```" + `"

# Emphasis/strong delimiters
emphasis_delim: "_"
strong_delim: "**"

# Link style: inlined (default) or referenced
link_style: inlined

# Reference style when link_style is referenced: full, collapsed, or shortcut
reference_style: full

# Skip language auto-detection for fenced code blocks
preformatted_code: false

# Opt-in GFM enrichments beyond strict CommonMark
gfm_tables: false
strikethrough: false

# Tag names serialized as raw HTML instead of converted
# keep_tags:
#   - svg

# Tag names dropped with their content when no built-in rule converts them
# remove_tags:
#   - script
#   - style

# File glob patterns a batch run should skip
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	return buf.Bytes()
}
