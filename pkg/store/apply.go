package store

import (
	"github.com/flowgraph/graphengine/pkg/graph"
	p "github.com/flowgraph/graphengine/pkg/patch"
)

// Apply applies patch pp to the store and returns its UndoPatch (§4.1).
//
// Apply is atomic from the caller's perspective: if any hard error occurs,
// every index mutation already performed for this call is unwound before
// the error is returned, so the store holds the same nodes, edges,
// endpoints and adjacency it held before the call. Ordering is not fully
// restored: a node or edge that was removed and then put back by the
// unwind (and an edge that was replaced) moves to the end of
// ListNodes/ListEdges and of its adjacency sequences.
// This is stronger than §4.2 requires ("state after the throw is
// undefined within this spec") but costs little here and lets Workspace's
// undo stack reason about whole editor calls rather than partial ones.
//
// Operation order is fixed (§4.1 step 2): replace nodes, replace edges,
// remove edges, remove nodes, add nodes, add edges. This guarantees
// removals never trip over dangling edges and adds observe the nodes
// added earlier in the same patch.
func (s *Store) Apply(pp p.Patch) (p.UndoPatch, error) {
	if err := checkNoConflicts(pp); err != nil {
		return p.Patch{}, err
	}

	var done []func()
	fail := func(err error) (p.UndoPatch, error) {
		for i := len(done) - 1; i >= 0; i-- {
			done[i]()
		}
		return p.Patch{}, err
	}

	var undoNodeReplace []graph.Node
	var undoEdgeReplace []graph.Edge
	var undoEdgeAdd []graph.Edge // reverses edgeRemove
	var undoNodeAdd []graph.Node // reverses nodeRemove
	var undoNodeRemove []string  // reverses nodeAdd
	var undoEdgeRemove []string  // reverses edgeAdd

	for _, n := range pp.NodeReplace {
		old, ok := s.nodeByID[n.ID]
		if !ok {
			return fail(&MissingIDError{Category: CategoryNode, ID: n.ID})
		}
		if err := checkEndpointReplacement(s, old, n); err != nil {
			return fail(err)
		}
		s.replaceNodeEndpoints(old, n)
		s.nodeByID[n.ID] = n
		undoNodeReplace = append(undoNodeReplace, old)
		done = append(done, func(old graph.Node) func() {
			return func() {
				s.replaceNodeEndpoints(s.nodeByID[old.ID], old)
				s.nodeByID[old.ID] = old
			}
		}(old))
	}

	for _, e := range pp.EdgeReplace {
		old, ok := s.edgeByID[e.ID]
		if !ok {
			return fail(&MissingIDError{Category: CategoryEdge, ID: e.ID})
		}
		s.removeEdge(e.ID)
		s.insertEdge(e)
		undoEdgeReplace = append(undoEdgeReplace, old)
		done = append(done, func(old graph.Edge, next graph.Edge) func() {
			return func() {
				s.removeEdge(next.ID)
				s.insertEdge(old)
			}
		}(old, e))
	}

	for _, id := range pp.EdgeRemove {
		old, ok := s.edgeByID[id]
		if !ok {
			return fail(&MissingIDError{Category: CategoryEdge, ID: id})
		}
		s.removeEdge(id)
		undoEdgeAdd = append(undoEdgeAdd, old)
		done = append(done, func(old graph.Edge) func() {
			return func() { s.insertEdge(old) }
		}(old))
	}

	for _, id := range pp.NodeRemove {
		old, ok := s.nodeByID[id]
		if !ok {
			return fail(&MissingIDError{Category: CategoryNode, ID: id})
		}
		if incident := s.incidentEdges(id); len(incident) > 0 {
			return fail(&DanglingEndpointError{NodeID: id, EdgeID: incident[0]})
		}
		s.removeNode(id)
		undoNodeAdd = append(undoNodeAdd, old)
		done = append(done, func(old graph.Node) func() {
			return func() { s.insertNode(old) }
		}(old))
	}

	for _, n := range pp.NodeAdd {
		if s.HasNode(n.ID) {
			return fail(&DuplicateIDError{Category: CategoryNode, ID: n.ID})
		}
		if err := checkFreshEndpoints(s, n); err != nil {
			return fail(err)
		}
		s.insertNode(n)
		undoNodeRemove = append(undoNodeRemove, n.ID)
		done = append(done, func(id string) func() {
			return func() { s.removeNode(id) }
		}(n.ID))
	}

	for _, e := range pp.EdgeAdd {
		if s.HasEdge(e.ID) {
			return fail(&DuplicateIDError{Category: CategoryEdge, ID: e.ID})
		}
		s.insertEdge(e)
		undoEdgeRemove = append(undoEdgeRemove, e.ID)
		done = append(done, func(id string) func() {
			return func() { s.removeEdge(id) }
		}(e.ID))
	}

	undo := p.Patch{
		NodeReplace: undoNodeReplace,
		EdgeReplace: undoEdgeReplace,
		EdgeAdd:     undoEdgeAdd,
		NodeAdd:     undoNodeAdd,
		NodeRemove:  undoNodeRemove,
		EdgeRemove:  undoEdgeRemove,
	}
	return undo, nil
}

// checkNoConflicts enforces §4.1 step 1: within one patch, no id may
// appear twice across add/remove/replace for the same category.
func checkNoConflicts(pp p.Patch) error {
	nodeSeen := make(map[string]struct{})
	for _, id := range allNodeIDs(pp) {
		if _, ok := nodeSeen[id]; ok {
			return &ConflictingPatchIDError{Category: CategoryNode, ID: id}
		}
		nodeSeen[id] = struct{}{}
	}
	edgeSeen := make(map[string]struct{})
	for _, id := range allEdgeIDs(pp) {
		if _, ok := edgeSeen[id]; ok {
			return &ConflictingPatchIDError{Category: CategoryEdge, ID: id}
		}
		edgeSeen[id] = struct{}{}
	}
	return nil
}

func allNodeIDs(pp p.Patch) []string {
	ids := make([]string, 0, len(pp.NodeAdd)+len(pp.NodeRemove)+len(pp.NodeReplace))
	for _, n := range pp.NodeAdd {
		ids = append(ids, n.ID)
	}
	ids = append(ids, pp.NodeRemove...)
	for _, n := range pp.NodeReplace {
		ids = append(ids, n.ID)
	}
	return ids
}

func allEdgeIDs(pp p.Patch) []string {
	ids := make([]string, 0, len(pp.EdgeAdd)+len(pp.EdgeRemove)+len(pp.EdgeReplace))
	for _, e := range pp.EdgeAdd {
		ids = append(ids, e.ID)
	}
	ids = append(ids, pp.EdgeRemove...)
	for _, e := range pp.EdgeReplace {
		ids = append(ids, e.ID)
	}
	return ids
}

// checkFreshEndpoints verifies every endpoint id a new node introduces is
// globally unused (§4.1 step 3 extended to endpoint ids via §3 invariant
// 1).
func checkFreshEndpoints(s *Store, n graph.Node) error {
	for _, ep := range n.Endpoints() {
		if s.HasEndpoint(ep.ID) {
			return &DuplicateIDError{Category: CategoryEndpoint, ID: ep.ID}
		}
	}
	return nil
}

// checkEndpointReplacement enforces §4.1 step 4: endpoints shared between
// old and next are kept; endpoints that disappear must have no incident
// edges; endpoint ids introduced by next must be globally fresh.
func checkEndpointReplacement(s *Store, old, next graph.Node) error {
	oldIDs := make(map[string]graph.Endpoint)
	for _, ep := range old.Endpoints() {
		oldIDs[ep.ID] = ep
	}
	nextIDs := make(map[string]struct{})
	for _, ep := range next.Endpoints() {
		nextIDs[ep.ID] = struct{}{}
	}

	for id, ep := range oldIDs {
		if _, kept := nextIDs[id]; kept {
			continue
		}
		var incident []string
		if ep.Role == graph.RoleInput {
			incident = s.InputEdges(id)
		} else {
			incident = s.OutputEdges(id)
		}
		if len(incident) > 0 {
			return &DanglingEndpointError{
				NodeID:     old.ID,
				EndpointID: id,
				Role:       ep.Role.String(),
				EdgeID:     incident[0],
			}
		}
	}

	for _, ep := range next.Endpoints() {
		if _, existedBefore := oldIDs[ep.ID]; existedBefore {
			continue
		}
		if s.HasEndpoint(ep.ID) {
			return &DuplicateIDError{Category: CategoryEndpoint, ID: ep.ID}
		}
	}
	return nil
}

// replaceNodeEndpoints swaps old's endpoint indices for next's, keeping
// indices for endpoint ids common to both (so edges referencing a kept
// endpoint id remain valid) and rebuilding endpointsByNodeID in next's
// input-then-output order.
func (s *Store) replaceNodeEndpoints(old, next graph.Node) {
	oldIDs := make(map[string]struct{})
	for _, ep := range old.Endpoints() {
		oldIDs[ep.ID] = struct{}{}
	}
	nextIDs := make(map[string]struct{})
	for _, ep := range next.Endpoints() {
		nextIDs[ep.ID] = struct{}{}
	}

	for _, ep := range old.Endpoints() {
		if _, kept := nextIDs[ep.ID]; kept {
			continue
		}
		delete(s.endpointByID, ep.ID)
		delete(s.ownerByEndpointID, ep.ID)
		delete(s.outEdgesByOutputID, ep.ID)
		delete(s.inEdgesByInputID, ep.ID)
	}

	seq := newIDSeq()
	for _, ep := range next.Endpoints() {
		s.endpointByID[ep.ID] = ep
		s.ownerByEndpointID[ep.ID] = next.ID
		seq.push(ep.ID)
	}
	s.endpointsByNodeID[next.ID] = seq
}
