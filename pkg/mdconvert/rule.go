package mdconvert

import "github.com/yaklabco/htmltomd/pkg/htmldom"

// Filter decides whether a Rule applies to a node. Filters must be
// side-effect-free.
type Filter func(node htmldom.Node, opts *Options) bool

// AppendFunc produces trailing content a rule contributes once per
// conversion (e.g. a reference-link table), and is responsible for
// clearing any rule-local accumulator it reads from. Returns "" when the
// rule has nothing to append.
type AppendFunc func(opts *Options) string

// Rule is the {predicate, replacement, append, key} tuple
// Replacement may close over rule-local state (e.g. the reference
// accumulator); that state is reset by Append, never by the RuleSet.
type Rule struct {
	Key         string
	Filter      Filter
	Replacement ReplacementFunc
	Append      AppendFunc
}

// Matches reports whether r applies to node under opts.
func (r Rule) Matches(node htmldom.Node, opts *Options) bool {
	if r.Filter == nil {
		return false
	}
	return r.Filter(node, opts)
}

// FilterTag returns a Filter matching a single lowercased tag name.
func FilterTag(tag string) Filter {
	return func(node htmldom.Node, _ *Options) bool {
		return node.HasTag(tag)
	}
}

// FilterTags returns a Filter matching any of the given lowercased tag
// names.
func FilterTags(tags ...string) Filter {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return func(node htmldom.Node, _ *Options) bool {
		return node.TagName() != "" && set[node.TagName()]
	}
}
