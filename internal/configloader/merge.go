package configloader

import "github.com/yaklabco/htmltomd/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.HeadingStyle != "" {
		result.HeadingStyle = override.HeadingStyle
	}
	if override.HorizontalRule != "" {
		result.HorizontalRule = override.HorizontalRule
	}
	if override.BulletMarker != "" {
		result.BulletMarker = override.BulletMarker
	}
	if override.CodeBlockStyle != "" {
		result.CodeBlockStyle = override.CodeBlockStyle
	}
	if override.FenceLiteral != "" {
		result.FenceLiteral = override.FenceLiteral
	}
	if override.EmphasisDelim != "" {
		result.EmphasisDelim = override.EmphasisDelim
	}
	if override.StrongDelim != "" {
		result.StrongDelim = override.StrongDelim
	}
	if override.LinkStyle != "" {
		result.LinkStyle = override.LinkStyle
	}
	if override.ReferenceStyle != "" {
		result.ReferenceStyle = override.ReferenceStyle
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}

	// Booleans are tricky because false is the zero value: CLI flags can
	// only ever turn these on through merge, never off.
	if override.PreformattedCode {
		result.PreformattedCode = override.PreformattedCode
	}
	if override.GFMTables {
		result.GFMTables = override.GFMTables
	}
	if override.Strikethrough {
		result.Strikethrough = override.Strikethrough
	}

	if override.KeepTags != nil {
		result.KeepTags = override.KeepTags
	}
	if override.RemoveTags != nil {
		result.RemoveTags = override.RemoveTags
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
