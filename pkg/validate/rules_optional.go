package validate

import (
	"fmt"

	"github.com/flowgraph/graphengine/pkg/patch"
)

// IsolatedNodeRule is the supplemental user-level warning rule named as the
// canonical example of a pluggable, non-standard rule in §4.4/§7
// ("warning level is reserved for user rules (e.g. 'isolated node')"). It
// is not part of StandardRules and is only run when a caller opts in, e.g.
// by appending it via Options.Rules or a pkg/config RuleProfile.
//
// A node is isolated when it has neither incoming nor outgoing edges.
func IsolatedNodeRule(state GraphState, p *patch.Patch, _ Options) []Diagnostic {
	var diags []Diagnostic
	for _, id := range scopeNodeIDs(state, p) {
		if len(state.Outgoing(id)) > 0 || len(state.Incoming(id)) > 0 {
			continue
		}
		diags = append(diags, Diagnostic{
			Level:   LevelWarning,
			Code:    CodeIsolatedNode,
			Message: fmt.Sprintf("node %s has no incoming or outgoing edges", id),
			Target:  nodeTarget(id),
		})
	}
	return diags
}

// WithIsolatedNodeRule returns the standard rule set with IsolatedNodeRule
// appended, for callers that want to opt into it without hand-building the
// full rule slice.
func WithIsolatedNodeRule() []Rule {
	return append(StandardRules(), IsolatedNodeRule)
}
