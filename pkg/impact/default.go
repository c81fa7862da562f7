package impact

import (
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// DefaultSemantics is the engine's built-in traversal: plain adjacency via
// the Store/Lookup Reader surface, and the default seed-selection
// algorithm from §4.6.
type DefaultSemantics struct{}

// Seeds implements the §4.6 default seed selection: the union of
// nodeRemove ids, nodeAdd/nodeReplace ids, both endpoints' node ids of
// every edgeAdd/edgeReplace, and both endpoints' node ids of every edge
// named by edgeRemove — resolved against state, which callers must supply
// as the pre-change Reader (see SPEC_FULL.md's fixed convention).
func (DefaultSemantics) Seeds(state store.Reader, p patch.Patch) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range p.NodeRemove {
		add(id)
	}
	for _, n := range p.NodeAdd {
		add(n.ID)
	}
	for _, n := range p.NodeReplace {
		add(n.ID)
	}
	for _, e := range p.EdgeAdd {
		add(e.Source.NodeID)
		add(e.Target.NodeID)
	}
	for _, e := range p.EdgeReplace {
		add(e.Source.NodeID)
		add(e.Target.NodeID)
	}
	for _, id := range p.EdgeRemove {
		if e, ok := state.Edge(id); ok {
			add(e.Source.NodeID)
			add(e.Target.NodeID)
		}
	}
	return out
}

// Outgoing returns nodeID's outgoing edge ids as-is.
func (DefaultSemantics) Outgoing(state store.Reader, nodeID string) []string {
	return state.Outgoing(nodeID)
}

// Incoming returns nodeID's incoming edge ids as-is.
func (DefaultSemantics) Incoming(state store.Reader, nodeID string) []string {
	return state.Incoming(nodeID)
}

var _ Semantics = DefaultSemantics{}
