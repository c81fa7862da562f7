package validate

import (
	"fmt"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
)

// identityRule checks that node, edge and endpoint ids are each unique
// within their category (§4.4 rule 1). Store.Apply already rejects
// duplicate or conflicting ids as hard errors (§4.1), so against a
// Store/Lookup-backed GraphState this rule never actually fires — it
// exists so a custom GraphState that doesn't structurally dedupe ids
// still gets the guarantee, and so the standard rule set is complete on
// its own terms.
func identityRule(state GraphState, p *patch.Patch, _ Options) []Diagnostic {
	nodeIDs := scopeNodeIDs(state, p)
	edgeIDs := scopeEdgeIDs(state, p)

	var diags []Diagnostic
	diags = append(diags, duplicateDiagnostics(nodeIDs, TargetNode)...)
	diags = append(diags, duplicateDiagnostics(edgeIDs, TargetEdge)...)

	var endpointIDs []string
	for _, id := range nodeIDs {
		endpointIDs = append(endpointIDs, state.Endpoints(id)...)
	}
	diags = append(diags, duplicateDiagnostics(endpointIDs, TargetEndpoint)...)
	return diags
}

// referenceRule checks that every in-scope edge's source/target node and
// endpoint ids resolve to something present in state (§4.4 rule 2).
func referenceRule(state GraphState, p *patch.Patch, _ Options) []Diagnostic {
	var diags []Diagnostic
	for _, id := range edgeScope(state, p) {
		e, ok := state.Edge(id)
		if !ok {
			continue
		}
		if !state.HasNode(e.Source.NodeID) {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeReference,
				Message: fmt.Sprintf("edge %s: source node %s does not exist", id, e.Source.NodeID),
				Target:  edgeTarget(id)})
		}
		if !state.HasNode(e.Target.NodeID) {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeReference,
				Message: fmt.Sprintf("edge %s: target node %s does not exist", id, e.Target.NodeID),
				Target:  edgeTarget(id)})
		}
		if !state.HasEndpoint(e.Source.EndpointID) {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeReference,
				Message: fmt.Sprintf("edge %s: source endpoint %s does not exist", id, e.Source.EndpointID),
				Target:  edgeTarget(id)})
		}
		if !state.HasEndpoint(e.Target.EndpointID) {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeReference,
				Message: fmt.Sprintf("edge %s: target endpoint %s does not exist", id, e.Target.EndpointID),
				Target:  edgeTarget(id)})
		}
	}
	return diags
}

// directionRule checks that an edge's source endpoint is an Output and its
// target endpoint is an Input (§4.4 rule 3).
func directionRule(state GraphState, p *patch.Patch, _ Options) []Diagnostic {
	var diags []Diagnostic
	for _, id := range edgeScope(state, p) {
		e, ok := state.Edge(id)
		if !ok {
			continue
		}
		if ep, ok := state.Endpoint(e.Source.EndpointID); ok && ep.Role != graph.RoleOutput {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeDirection,
				Message: fmt.Sprintf("edge %s: source endpoint %s is not an output", id, e.Source.EndpointID),
				Target:  edgeTarget(id)})
		}
		if ep, ok := state.Endpoint(e.Target.EndpointID); ok && ep.Role != graph.RoleInput {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeDirection,
				Message: fmt.Sprintf("edge %s: target endpoint %s is not an input", id, e.Target.EndpointID),
				Target:  edgeTarget(id)})
		}
	}
	return diags
}

// ownershipRule checks that an edge's source/target endpoint is actually
// owned by the node the edge's reference names (§4.4 rule 4).
func ownershipRule(state GraphState, p *patch.Patch, _ Options) []Diagnostic {
	var diags []Diagnostic
	for _, id := range edgeScope(state, p) {
		e, ok := state.Edge(id)
		if !ok {
			continue
		}
		if owner, ok := state.Owner(e.Source.EndpointID); ok && owner != e.Source.NodeID {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeOwnership,
				Message: fmt.Sprintf("edge %s: source endpoint %s is owned by %s, not %s", id, e.Source.EndpointID, owner, e.Source.NodeID),
				Target:  edgeTarget(id)})
		}
		if owner, ok := state.Owner(e.Target.EndpointID); ok && owner != e.Target.NodeID {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeOwnership,
				Message: fmt.Sprintf("edge %s: target endpoint %s is owned by %s, not %s", id, e.Target.EndpointID, owner, e.Target.NodeID),
				Target:  edgeTarget(id)})
		}
	}
	return diags
}

// cardinalityRule checks that every in-scope Input has at most one incoming
// edge, unless Options.AllowMultiple is set (§4.4 rule 5).
func cardinalityRule(state GraphState, p *patch.Patch, opts Options) []Diagnostic {
	if opts.AllowMultiple {
		return nil
	}
	var diags []Diagnostic
	for _, id := range affectedInputs(state, p) {
		if n := len(state.InputEdges(id)); n > 1 {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeCardinality,
				Message: fmt.Sprintf("input %s has %d incoming edges, at most 1 allowed", id, n),
				Target:  endpointTarget(id)})
		}
	}
	return diags
}

// flowRule checks that an edge's source and target contracts carry the same
// Flow string, when Options.MatchFlow is set (§4.4 rule 6).
func flowRule(state GraphState, p *patch.Patch, opts Options) []Diagnostic {
	if !opts.MatchFlow {
		return nil
	}
	var diags []Diagnostic
	for _, id := range edgeScope(state, p) {
		e, ok := state.Edge(id)
		if !ok {
			continue
		}
		src, srcOK := state.Endpoint(e.Source.EndpointID)
		dst, dstOK := state.Endpoint(e.Target.EndpointID)
		if srcOK && dstOK && src.Contract.Flow != dst.Contract.Flow {
			diags = append(diags, Diagnostic{Level: LevelError, Code: CodeFlow,
				Message: fmt.Sprintf("edge %s: flow mismatch %q != %q", id, src.Contract.Flow, dst.Contract.Flow),
				Target:  edgeTarget(id)})
		}
	}
	return diags
}

// scopeNodeIDs resolves the node ids a rule should examine: every node on a
// full scan, or the patch-touched node ids on an incremental scan.
func scopeNodeIDs(state GraphState, p *patch.Patch) []string {
	if p == nil {
		return state.ListNodes()
	}
	return dedupeExisting(state, p.NodeIDs(), state.HasNode)
}

// scopeEdgeIDs resolves the edge ids a rule should examine: every edge on a
// full scan, or the patch-touched edge ids on an incremental scan.
func scopeEdgeIDs(state GraphState, p *patch.Patch) []string {
	if p == nil {
		return state.ListEdges()
	}
	return dedupeExisting(state, p.EdgeIDs(), state.HasEdge)
}

// edgeScope resolves the edge ids reference/direction/ownership/flow should
// examine on an incremental scan (§4.4: "union of patch's new/replaced
// edges, and all edges incident to any replaced node").
func edgeScope(state GraphState, p *patch.Patch) []string {
	if p == nil {
		return state.ListEdges()
	}
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, e := range p.EdgeAdd {
		add(e.ID)
	}
	for _, e := range p.EdgeReplace {
		add(e.ID)
	}
	for _, n := range p.NodeReplace {
		for _, id := range state.Outgoing(n.ID) {
			add(id)
		}
		for _, id := range state.Incoming(n.ID) {
			add(id)
		}
	}
	return ids
}

// affectedInputs resolves the Input ids the cardinality rule should examine
// on an incremental scan (§4.4: "union of targets of new/replaced edges,
// and all inputs of new/replaced nodes").
func affectedInputs(state GraphState, p *patch.Patch) []string {
	if p == nil {
		var ids []string
		for _, nodeID := range state.ListNodes() {
			for _, epID := range state.Endpoints(nodeID) {
				if ep, ok := state.Input(epID); ok {
					_ = ep
					ids = append(ids, epID)
				}
			}
		}
		return ids
	}
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, e := range p.EdgeAdd {
		add(e.Target.EndpointID)
	}
	for _, e := range p.EdgeReplace {
		add(e.Target.EndpointID)
	}
	for _, n := range p.NodeAdd {
		for _, ep := range n.Inputs {
			add(ep.ID)
		}
	}
	for _, n := range p.NodeReplace {
		for _, ep := range n.Inputs {
			add(ep.ID)
		}
	}
	return ids
}

// dedupeExisting returns the unique ids from ids that exist in state
// according to exists, preserving first-seen order.
func dedupeExisting(_ GraphState, ids []string, exists func(string) bool) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if exists(id) {
			out = append(out, id)
		}
	}
	return out
}

func duplicateDiagnostics(ids []string, target TargetType) []Diagnostic {
	count := make(map[string]int, len(ids))
	for _, id := range ids {
		count[id]++
	}
	// Iterate ids (not the map) so diagnostic order is deterministic and
	// independent of map iteration order (P5).
	reported := make(map[string]struct{})
	var diags []Diagnostic
	for _, id := range ids {
		if count[id] <= 1 {
			continue
		}
		if _, ok := reported[id]; ok {
			continue
		}
		reported[id] = struct{}{}
		diags = append(diags, Diagnostic{
			Level:   LevelError,
			Code:    CodeIdentity,
			Message: fmt.Sprintf("duplicate %s id: %s", target, id),
			Target:  Target{Type: target, ID: id},
		})
	}
	return diags
}
