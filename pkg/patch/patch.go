// Package patch defines the fact-level change record the rest of the
// engine operates on: Patch (§4.1), its self-inverse UndoPatch, and Log,
// the append-only merger a Workspace transaction accumulates into (§4.5).
//
// A Patch never carries behavior of its own — it is pure data, the way the
// teacher's storage.Operation record is pure data consumed by
// Transaction.Commit (pkg/storage/transaction.go). Applying a patch, and
// computing its inverse, is the store package's job.
package patch

import "github.com/flowgraph/graphengine/pkg/graph"

// Patch is a record of add/remove/replace operations over nodes and edges.
// Each field is optional; a nil or empty slice means "no operations of
// that kind". Semantics and invariants are defined in full by §4.1; this
// type only carries the data.
type Patch struct {
	NodeAdd     []graph.Node
	NodeRemove  []string
	NodeReplace []graph.Node
	EdgeAdd     []graph.Edge
	EdgeRemove  []string
	EdgeReplace []graph.Edge
}

// UndoPatch reverses a previously applied Patch. It is itself a Patch —
// applying it restores the pre-apply state (§4.1).
type UndoPatch = Patch

// IsEmpty reports whether the patch carries no operations at all.
func (p Patch) IsEmpty() bool {
	return len(p.NodeAdd) == 0 && len(p.NodeRemove) == 0 && len(p.NodeReplace) == 0 &&
		len(p.EdgeAdd) == 0 && len(p.EdgeRemove) == 0 && len(p.EdgeReplace) == 0
}

// NodeIDs returns the ids touched by NodeAdd, NodeReplace and NodeRemove,
// in that order, without deduplication. Used by the validator's incremental
// node scope, which needs every node a patch plausibly affects.
func (p Patch) NodeIDs() []string {
	ids := make([]string, 0, len(p.NodeAdd)+len(p.NodeReplace)+len(p.NodeRemove))
	for _, n := range p.NodeAdd {
		ids = append(ids, n.ID)
	}
	for _, n := range p.NodeReplace {
		ids = append(ids, n.ID)
	}
	ids = append(ids, p.NodeRemove...)
	return ids
}

// EdgeIDs returns the ids touched by EdgeAdd, EdgeReplace and EdgeRemove,
// in that order, without deduplication.
func (p Patch) EdgeIDs() []string {
	ids := make([]string, 0, len(p.EdgeAdd)+len(p.EdgeReplace)+len(p.EdgeRemove))
	for _, e := range p.EdgeAdd {
		ids = append(ids, e.ID)
	}
	for _, e := range p.EdgeReplace {
		ids = append(ids, e.ID)
	}
	ids = append(ids, p.EdgeRemove...)
	return ids
}
