package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/config"
)

// envVarPrefix is the prefix for all htmltomd environment variables.
const envVarPrefix = "HTMLTOMD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"HEADING_STYLE":    {field: "heading_style", typ: envTypeString},
	"CODE_BLOCK_STYLE": {field: "code_block_style", typ: envTypeString},
	"LINK_STYLE":       {field: "link_style", typ: envTypeString},
	"REFERENCE_STYLE":  {field: "reference_style", typ: envTypeString},
	"GFM_TABLES":       {field: "gfm_tables", typ: envTypeBool},
	"STRIKETHROUGH":    {field: "strikethrough", typ: envTypeBool},
	"JOBS":             {field: "jobs", typ: envTypeInt},
	"FORMAT":           {field: "format", typ: envTypeString},
	"IGNORE":           {field: "ignore", typ: envTypeSlice},
	"KEEP_TAGS":        {field: "keep_tags", typ: envTypeSlice},
	"REMOVE_TAGS":      {field: "remove_tags", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with HTMLTOMD_ (e.g., HTMLTOMD_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "heading_style":
		cfg.HeadingStyle = value
	case "code_block_style":
		cfg.CodeBlockStyle = value
	case "link_style":
		cfg.LinkStyle = value
	case "reference_style":
		cfg.ReferenceStyle = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "gfm_tables":
		cfg.GFMTables = value
	case "strikethrough":
		cfg.Strikethrough = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "keep_tags":
		cfg.KeepTags = value
	case "remove_tags":
		cfg.RemoveTags = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"HTMLTOMD_HEADING_STYLE":    "Heading style: setext or atx",
		"HTMLTOMD_CODE_BLOCK_STYLE": "Code block style: indented or fenced",
		"HTMLTOMD_LINK_STYLE":       "Link style: inlined or referenced",
		"HTMLTOMD_REFERENCE_STYLE":  "Reference style: full, collapsed, or shortcut",
		"HTMLTOMD_GFM_TABLES":       "Enable GFM table rendering: true or false",
		"HTMLTOMD_STRIKETHROUGH":    "Enable GFM strikethrough rendering: true or false",
		"HTMLTOMD_JOBS":             "Number of parallel conversion workers (0 = auto)",
		"HTMLTOMD_FORMAT":           "Report format: text, table, or json",
		"HTMLTOMD_IGNORE":           "Comma-separated list of ignore patterns",
		"HTMLTOMD_KEEP_TAGS":        "Comma-separated list of tags to keep as raw HTML",
		"HTMLTOMD_REMOVE_TAGS":      "Comma-separated list of tags to drop with their contents when no built-in rule converts them",
	}
}
