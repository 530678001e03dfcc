package mdconvert

import (
	"github.com/yaklabco/htmltomd/pkg/classify"
	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

// RuleSet holds the ordered rule containers: user rules
// (newest first), the built-in CommonMark rules, keep rules, and remove
// rules, plus the three distinguished rules (blank/keep/default) that
// always exist. Resolution is strictly about finding the first matching
// predicate in precedence order, so order is the entire contract and
// RuleSet keeps ordered slices rather than a map.
type RuleSet struct {
	userRules    []Rule
	builtinRules []Rule
	keepRules    []Rule
	removeRules  []Rule
}

// NewRuleSet creates an empty RuleSet. Use AddBuiltin to install the
// CommonMark rule factory's output.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddUserRule installs a user-supplied rule at the front of the user
// rule list, so the most recently added rule takes precedence.
func (rs *RuleSet) AddUserRule(r Rule) {
	rs.userRules = append([]Rule{r}, rs.userRules...)
}

// AddBuiltin appends a rule to the built-in CommonMark set, in factory
// registration order.
func (rs *RuleSet) AddBuiltin(r Rule) {
	rs.builtinRules = append(rs.builtinRules, r)
}

// Keep registers a predicate whose matching nodes are emitted as raw
// HTML via the keep replacement.
func (rs *RuleSet) Keep(filter Filter) {
	rs.keepRules = append(rs.keepRules, Rule{Key: "keep", Filter: filter})
}

// Remove registers a predicate whose matching nodes are emitted as the
// empty string.
func (rs *RuleSet) Remove(filter Filter) {
	rs.removeRules = append(rs.removeRules, Rule{Key: "remove", Filter: filter})
}

// BuiltinRules returns the registered built-in rules in registration
// order, used by the post-processor to invoke each rule's Append in
// iteration order and by the CLI's "rules" command listing.
func (rs *RuleSet) BuiltinRules() []Rule {
	return rs.builtinRules
}

// Resolve implements the textual precedence:
//  1. blank rule, if the node is not void and is blank
//  2. first match in user_rules ∪ builtin_rules (user first)
//  3. first match in keep_rules
//  4. first match in remove_rules
//  5. default rule
func (rs *RuleSet) Resolve(node htmldom.Node, opts *Options) Rule {
	if !classify.IsVoid(node) && classify.IsBlank(node) {
		return Rule{Key: "blank", Replacement: opts.BlankReplacement}
	}
	for _, r := range rs.userRules {
		if r.Matches(node, opts) {
			return r
		}
	}
	for _, r := range rs.builtinRules {
		if r.Matches(node, opts) {
			return r
		}
	}
	for _, r := range rs.keepRules {
		if r.Matches(node, opts) {
			return Rule{Key: "keep", Replacement: opts.KeepReplacement}
		}
	}
	for _, r := range rs.removeRules {
		if r.Matches(node, opts) {
			return Rule{Key: "remove", Replacement: func(string, htmldom.Node, *Options) string { return "" }}
		}
	}
	return Rule{Key: "default", Replacement: opts.DefaultReplacement}
}
