package workspace

import (
	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/lookup"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// Editor is the mutation surface an editorFn passed to Workspace.Update
// operates through (§4.5 step 2). Each call translates to a minimal patch,
// applies it to the Store, records the returned undo patch, mirrors the
// change into the Lookup, and merges the patch into the transaction's
// PatchLog.
type Editor struct {
	store *store.Store
	log   *patch.Log
	undo  []patch.UndoPatch

	lookup *lookup.Lookup
}

// apply is the single primitive every editor method funnels through,
// keeping Store, Lookup, the undo stack and the PatchLog in lock-step
// (§9: "factor the mutations into a single index-and-value update
// primitive").
func (e *Editor) apply(p patch.Patch) error {
	undo, err := e.store.Apply(p)
	if err != nil {
		return err
	}
	e.undo = append(e.undo, undo)
	e.lookup.ApplyPatch(p)
	e.log.Merge(p)
	return nil
}

// CreateNode adds a new node.
func (e *Editor) CreateNode(n graph.Node) error {
	return e.apply(patch.Patch{NodeAdd: []graph.Node{n}})
}

// ReplaceNode replaces an existing node by id.
func (e *Editor) ReplaceNode(n graph.Node) error {
	return e.apply(patch.Patch{NodeReplace: []graph.Node{n}})
}

// RemoveNode is the high-level convenience described in §4.5 step 3: it
// first collects every edge incident to id via the Store, then emits a
// single patch removing those edges and the node together, so the
// engine's edges-before-nodes ordering (§4.1 step 2, §9) never sees a
// dangling reference.
func (e *Editor) RemoveNode(id string) error {
	incident := e.store.IncidentEdges(id)
	return e.apply(patch.Patch{EdgeRemove: incident, NodeRemove: []string{id}})
}

// CreateEdge adds a new edge.
func (e *Editor) CreateEdge(ed graph.Edge) error {
	return e.apply(patch.Patch{EdgeAdd: []graph.Edge{ed}})
}

// ReplaceEdge replaces an existing edge by id.
func (e *Editor) ReplaceEdge(ed graph.Edge) error {
	return e.apply(patch.Patch{EdgeReplace: []graph.Edge{ed}})
}

// RemoveEdge removes an existing edge by id.
func (e *Editor) RemoveEdge(id string) error {
	return e.apply(patch.Patch{EdgeRemove: []string{id}})
}

// Apply applies an arbitrary raw patch, for callers that already have a
// fully-formed Patch rather than a sequence of single-entity edits.
func (e *Editor) Apply(p patch.Patch) error {
	return e.apply(p)
}

// rollback pops the undo stack and replays it in reverse against both the
// Store and the Lookup (§4.5 step 7). Each undo patch was produced by a
// Store.Apply call that already succeeded, so replaying it is expected to
// always succeed in turn (P2); rollback therefore does not itself return
// an error.
func (e *Editor) rollback() {
	for i := len(e.undo) - 1; i >= 0; i-- {
		u := e.undo[i]
		e.store.Apply(u) //nolint:errcheck // see doc comment: expected to always succeed.
		e.lookup.ApplyPatch(u)
	}
}
