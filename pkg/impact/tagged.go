package impact

import (
	"github.com/flowgraph/graphengine/pkg/store"
)

// TaggedSemantics realizes §4.6's own example of a custom semantics:
// "traversing only edges tagged impact=true". It reuses DefaultSemantics
// for seed selection and restricts Outgoing/Incoming to edges whose
// Metadata[Key] is the boolean true.
type TaggedSemantics struct {
	DefaultSemantics
	// Key is the edge metadata key checked for the boolean true. NewTagged
	// sets it to the key it is given; there is no default.
	Key string
}

// NewTagged builds a TaggedSemantics gated on the given metadata key.
func NewTagged(key string) *TaggedSemantics {
	return &TaggedSemantics{Key: key}
}

// Outgoing restricts the default outgoing edge set to tagged edges.
func (t *TaggedSemantics) Outgoing(state store.Reader, nodeID string) []string {
	return t.filterTagged(state, state.Outgoing(nodeID))
}

// Incoming restricts the default incoming edge set to tagged edges.
func (t *TaggedSemantics) Incoming(state store.Reader, nodeID string) []string {
	return t.filterTagged(state, state.Incoming(nodeID))
}

func (t *TaggedSemantics) filterTagged(state store.Reader, edgeIDs []string) []string {
	var out []string
	for _, id := range edgeIDs {
		e, ok := state.Edge(id)
		if !ok {
			continue
		}
		if tagged, _ := e.Metadata[t.Key].(bool); tagged {
			out = append(out, id)
		}
	}
	return out
}

var _ Semantics = (*TaggedSemantics)(nil)
