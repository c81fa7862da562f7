// Package impact implements the BFS impact analyzer (§4.6): given a Patch
// and a pre-change store.Reader, it computes seed nodes and propagates
// along upstream/downstream edges to produce the affected sub-graph.
//
// Grounded on the BFS-over-adjacency-lists shape of the teacher pack's own
// graph-traversal code — apoc/algo/algo.go's centrality measures walk a
// Store-like neighbor index breadth-first — adapted here to seed from a
// Patch instead of from every node, and to stop at a depth cap/stop-node
// set instead of visiting exhaustively.
package impact

import (
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// Semantics is the pluggable traversal contract (§4.6, §9: "a semantics is
// three small functions"). The default implementation is DefaultSemantics;
// TaggedSemantics is the "only edges tagged impact=true" variant named in
// §4.6's own example.
type Semantics interface {
	// Seeds resolves the set of node ids a patch directly implicates,
	// given the pre-change state (needed to resolve edgeRemove ids, which
	// no longer exist in any post-change state).
	Seeds(state store.Reader, p patch.Patch) []string
	// Outgoing returns the edge ids to traverse forward from nodeID.
	Outgoing(state store.Reader, nodeID string) []string
	// Incoming returns the edge ids to traverse backward from nodeID.
	Incoming(state store.Reader, nodeID string) []string
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
