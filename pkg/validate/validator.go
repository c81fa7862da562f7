package validate

import (
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// GraphState is the read-only view a rule runs against. It is exactly
// store.Reader — both Store and Lookup already satisfy it, so a rule
// validates identically against either (§4.4).
type GraphState = store.Reader

// Rule is a single validation check (§4.4, §9: "a rule is (state, patch?) ->
// Diagnostic[]"). When p is nil the rule performs a full scan; when p is
// non-nil the rule scans only what p can plausibly have affected, against
// state that already reflects p having been applied.
type Rule func(state GraphState, p *patch.Patch, opts Options) []Diagnostic

// Options bundles the standard rules' tunables plus the active rule set
// (§6's "Validate options").
type Options struct {
	// AllowMultiple disables the cardinality rule when true.
	AllowMultiple bool
	// MatchFlow enables the flow rule when true.
	MatchFlow bool
	// Rules is the ordered rule set to run. A nil slice means the
	// Validator's own rule list (the standard set, in the fixed §4.4
	// order, for a Validator built with New).
	Rules []Rule
}

// StandardRules returns the six built-in rules in the fixed order the spec
// requires (§4.4: "the ordering of standard rules must be preserved so that
// downstream tests can filter by code").
func StandardRules() []Rule {
	return []Rule{
		identityRule,
		referenceRule,
		directionRule,
		ownershipRule,
		cardinalityRule,
		flowRule,
	}
}

func (o Options) rules() []Rule {
	if o.Rules != nil {
		return o.Rules
	}
	return StandardRules()
}

// Validator runs an ordered rule list against a GraphState, in full or
// incremental mode.
type Validator struct {
	rules []Rule
}

// New builds a Validator over the standard rule set. Use NewWith to run a
// custom or extended rule set (e.g. with the isolated-node warning rule
// appended).
func New() *Validator {
	return &Validator{rules: StandardRules()}
}

// NewWith builds a Validator over an explicit rule list.
func NewWith(rules []Rule) *Validator {
	return &Validator{rules: rules}
}

// CheckAll runs every rule in full-scan mode (§4.4 "checkAll").
func (v *Validator) CheckAll(state GraphState, opts Options) []Diagnostic {
	rules := v.rules
	if opts.Rules != nil {
		rules = opts.Rules
	}
	var out []Diagnostic
	for _, r := range rules {
		out = append(out, r(state, nil, opts)...)
	}
	return out
}

// Check runs every rule in incremental mode against state that already
// reflects p having been applied (§4.4 "check"; see §4.5 step 5 — the
// Workspace validates the post-apply Store against the merged patch).
func (v *Validator) Check(state GraphState, p patch.Patch, opts Options) []Diagnostic {
	rules := v.rules
	if opts.Rules != nil {
		rules = opts.Rules
	}
	var out []Diagnostic
	for _, r := range rules {
		out = append(out, r(state, &p, opts)...)
	}
	return out
}

// HasErrors reports whether any diagnostic in ds is error-level (§4.5 step
// 5, §7's abort-on-error propagation policy).
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}
