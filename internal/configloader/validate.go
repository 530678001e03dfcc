package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "heading_style").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownHeadingStyles = map[string]bool{"setext": true, "atx": true}

//nolint:gochecknoglobals // Read-only lookup table.
var knownCodeBlockStyles = map[string]bool{"indented": true, "fenced": true}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLinkStyles = map[string]bool{"inlined": true, "referenced": true}

//nolint:gochecknoglobals // Read-only lookup table.
var knownReferenceStyles = map[string]bool{"full": true, "collapsed": true, "shortcut": true}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:  true,
	config.FormatTable: true,
	config.FormatJSON:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.HeadingStyle != "" && !knownHeadingStyles[cfg.HeadingStyle] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "heading_style",
			Value:   cfg.HeadingStyle,
			Message: fmt.Sprintf("invalid heading_style %q; must be one of: setext, atx", cfg.HeadingStyle),
		})
	}

	if cfg.CodeBlockStyle != "" && !knownCodeBlockStyles[cfg.CodeBlockStyle] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "code_block_style",
			Value:   cfg.CodeBlockStyle,
			Message: fmt.Sprintf("invalid code_block_style %q; must be one of: indented, fenced", cfg.CodeBlockStyle),
		})
	}

	if cfg.LinkStyle != "" && !knownLinkStyles[cfg.LinkStyle] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "link_style",
			Value:   cfg.LinkStyle,
			Message: fmt.Sprintf("invalid link_style %q; must be one of: inlined, referenced", cfg.LinkStyle),
		})
	}

	if cfg.ReferenceStyle != "" && !knownReferenceStyles[cfg.ReferenceStyle] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "reference_style",
			Value:   cfg.ReferenceStyle,
			Message: fmt.Sprintf("invalid reference_style %q; must be one of: full, collapsed, shortcut", cfg.ReferenceStyle),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateIgnorePatterns(cfg, result)

	for _, tag := range cfg.KeepTags {
		if containsAny(tag, cfg.RemoveTags) {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "keep_tags",
				Value:   tag,
				Message: fmt.Sprintf("%q appears in both keep_tags and remove_tags; keep_tags takes precedence", tag),
			})
		}
	}

	return result
}

func containsAny(tag string, tags []string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
