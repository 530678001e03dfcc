package mdconvert

import (
	"github.com/yaklabco/htmltomd/pkg/htmldom"
)

// Service is the public conversion facade: it pairs an Options
// configuration with a RuleSet and exposes the single entry point
// callers need. A Service is cheap to build and holds no per-conversion
// state of its own — each Convert call builds a
// fresh reducer (pkg/mdconvert/reduce.go) over the options and rule set.
//
// Two conversions on distinct Service instances are independent. Two
// conversions concurrently driving the SAME Service are not supported:
// builtin rules like the reference-link rule hold rule-local accumulator
// state that a concurrent Convert would corrupt. Callers that
// need concurrent conversions must construct one Service per goroutine —
// see pkg/runner, which does exactly this for batch mode.
type Service struct {
	Options *Options
	Rules   *RuleSet
}

// NewService builds a Service from opts (nil selects NewOptions()) and a
// rule set. Pass a freshly built RuleSet per Service when any builtin
// rule carries per-conversion state (the reference-link accumulator is
// reset by its own Append, but a Service shared across goroutines would
// still race on that state mid-conversion).
func NewService(opts *Options, rules *RuleSet) *Service {
	if opts == nil {
		opts = NewOptions()
	}
	return &Service{Options: opts, Rules: rules}
}

// Convert converts an HTML string to Markdown using the document's
// <body> (falling back to <html>, falling back to the parsed root) as
// the starting node. The only failure mode is a parse failure from the
// DOM collaborator.
func (s *Service) Convert(html string) (string, error) {
	root, err := htmldom.ParseString(html)
	if err != nil {
		return "", err
	}
	return s.ConvertNode(htmldom.Document(root)), nil
}

// ConvertNode converts an already-parsed node (e.g. a fragment produced
// by a caller's own parser integration) to Markdown. It never fails: a
// malformed tree simply produces whatever the reducer visits.
func (s *Service) ConvertNode(node htmldom.Node) string {
	return Reduce(node, s.Rules, s.Options)
}
