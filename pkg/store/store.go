// Package store implements the mutable authoritative index over a graph's
// current state (§4.2). A Store is built from an initial graph.Graph (or
// empty), mutated only through Apply, and can export a fresh immutable
// snapshot at any time via ToGraph.
//
// The Store enforces the hard structural invariants from §3: unique node,
// edge and endpoint ids, and no removal of a node or endpoint that still
// has edges. It does not check that an added edge's references resolve;
// that is left to the validator's reference, direction and ownership
// rules. It keeps a family of id-keyed maps and adjacency lists in
// lock-step on every mutation, the way the teacher's MemoryEngine keeps
// nodes/edges/nodesByLabel/outgoingEdges/incomingEdges in sync
// (pkg/storage/memory.go) — generalized here from label/property indices
// to the typed input/output/contract model in §3.
//
// A Store is not safe for concurrent use. §5 is explicit that the engine
// is single-threaded and synchronous with no concurrent multi-writer
// support, so Store carries no mutex — adding one would guard against a
// scenario the spec rules out rather than one that can occur.
//
// Example Usage:
//
//	s := store.New()
//	undo, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := s.ToGraph()
//	// ... later, to revert:
//	s.Apply(undo)
package store

import (
	"container/list"

	"github.com/flowgraph/graphengine/pkg/graph"
)

// Store is the mutable authoritative index over a graph's current nodes,
// edges and their adjacency (§4.2).
type Store struct {
	nodeByID map[string]graph.Node
	edgeByID map[string]graph.Edge

	// endpointByID covers both inputs and outputs; the Input/Output
	// accessors filter it by role.
	endpointByID      map[string]graph.Endpoint
	ownerByEndpointID map[string]string

	endpointsByNodeID map[string]*idSeq
	outEdgesByNodeID  map[string]*idSeq
	inEdgesByNodeID   map[string]*idSeq
	outEdgesByOutputID map[string]*idSeq
	inEdgesByInputID   map[string]*idSeq

	// nodeOrder/edgeOrder preserve strict insertion order even across
	// removals (§5: "listNodes and listEdges iterate in node/edge
	// insertion order"), unlike the swap-remove adjacency sequences
	// above. A doubly linked list plus an id->element map gives O(1)
	// push and O(1) removal without disturbing the order of what
	// remains, the same shape as the teacher's LRU list in
	// pkg/cache/query_cache.go.
	nodeOrder    *list.List
	nodeOrderPos map[string]*list.Element
	edgeOrder    *list.List
	edgeOrderPos map[string]*list.Element
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nodeByID:           make(map[string]graph.Node),
		edgeByID:           make(map[string]graph.Edge),
		endpointByID:       make(map[string]graph.Endpoint),
		ownerByEndpointID:  make(map[string]string),
		endpointsByNodeID:  make(map[string]*idSeq),
		outEdgesByNodeID:   make(map[string]*idSeq),
		inEdgesByNodeID:    make(map[string]*idSeq),
		outEdgesByOutputID: make(map[string]*idSeq),
		inEdgesByInputID:   make(map[string]*idSeq),
		nodeOrder:          list.New(),
		nodeOrderPos:       make(map[string]*list.Element),
		edgeOrder:          list.New(),
		edgeOrderPos:       make(map[string]*list.Element),
	}
}

// FromGraph builds a Store pre-loaded with g's nodes and edges, in g's
// iteration order. It does not re-validate g's invariants — callers should
// only pass graphs that are already known-valid (e.g. a prior ToGraph
// snapshot, or a freshly deserialized GraphValue believed to satisfy §3).
func FromGraph(g graph.Graph) *Store {
	s := New()
	for _, n := range g.Nodes() {
		s.insertNode(n)
	}
	for _, e := range g.Edges() {
		s.insertEdge(e)
	}
	return s
}

// ToGraph produces a fresh immutable snapshot from the store's current
// contents, in insertion order (§4.2).
func (s *Store) ToGraph() graph.Graph {
	nodes := make([]graph.Node, 0, len(s.nodeByID))
	for e := s.nodeOrder.Front(); e != nil; e = e.Next() {
		nodes = append(nodes, s.nodeByID[e.Value.(string)])
	}
	edges := make([]graph.Edge, 0, len(s.edgeByID))
	for e := s.edgeOrder.Front(); e != nil; e = e.Next() {
		edges = append(edges, s.edgeByID[e.Value.(string)])
	}
	return graph.New(nodes, edges, nil)
}

// --- Reader surface (§4.2) ---

func (s *Store) HasNode(id string) bool     { _, ok := s.nodeByID[id]; return ok }
func (s *Store) HasEdge(id string) bool     { _, ok := s.edgeByID[id]; return ok }
func (s *Store) HasEndpoint(id string) bool { _, ok := s.endpointByID[id]; return ok }

func (s *Store) Node(id string) (graph.Node, bool) { n, ok := s.nodeByID[id]; return n, ok }
func (s *Store) Edge(id string) (graph.Edge, bool) { e, ok := s.edgeByID[id]; return e, ok }

func (s *Store) Endpoint(id string) (graph.Endpoint, bool) {
	ep, ok := s.endpointByID[id]
	return ep, ok
}

func (s *Store) Input(id string) (graph.Endpoint, bool) {
	ep, ok := s.endpointByID[id]
	if !ok || ep.Role != graph.RoleInput {
		return graph.Endpoint{}, false
	}
	return ep, true
}

func (s *Store) Output(id string) (graph.Endpoint, bool) {
	ep, ok := s.endpointByID[id]
	if !ok || ep.Role != graph.RoleOutput {
		return graph.Endpoint{}, false
	}
	return ep, true
}

func (s *Store) Owner(endpointID string) (string, bool) {
	id, ok := s.ownerByEndpointID[endpointID]
	return id, ok
}

func (s *Store) Endpoints(nodeID string) []string {
	seq, ok := s.endpointsByNodeID[nodeID]
	if !ok {
		return nil
	}
	return seq.values()
}

func (s *Store) Outgoing(nodeID string) []string {
	seq, ok := s.outEdgesByNodeID[nodeID]
	if !ok {
		return nil
	}
	return seq.values()
}

func (s *Store) Incoming(nodeID string) []string {
	seq, ok := s.inEdgesByNodeID[nodeID]
	if !ok {
		return nil
	}
	return seq.values()
}

func (s *Store) OutputEdges(outputID string) []string {
	seq, ok := s.outEdgesByOutputID[outputID]
	if !ok {
		return nil
	}
	return seq.values()
}

func (s *Store) InputEdges(inputID string) []string {
	seq, ok := s.inEdgesByInputID[inputID]
	if !ok {
		return nil
	}
	return seq.values()
}

func (s *Store) ListNodes() []string {
	out := make([]string, 0, s.nodeOrder.Len())
	for e := s.nodeOrder.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

func (s *Store) ListEdges() []string {
	out := make([]string, 0, s.edgeOrder.Len())
	for e := s.edgeOrder.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

var _ Reader = (*Store)(nil)

// --- internal index maintenance ---

func (s *Store) insertNode(n graph.Node) {
	s.nodeByID[n.ID] = n
	s.nodeOrderPos[n.ID] = s.nodeOrder.PushBack(n.ID)

	seq := newIDSeq()
	for _, ep := range n.Endpoints() {
		s.endpointByID[ep.ID] = ep
		s.ownerByEndpointID[ep.ID] = n.ID
		seq.push(ep.ID)
	}
	s.endpointsByNodeID[n.ID] = seq

	if _, ok := s.outEdgesByNodeID[n.ID]; !ok {
		s.outEdgesByNodeID[n.ID] = newIDSeq()
	}
	if _, ok := s.inEdgesByNodeID[n.ID]; !ok {
		s.inEdgesByNodeID[n.ID] = newIDSeq()
	}
}

func (s *Store) removeNode(id string) graph.Node {
	old := s.nodeByID[id]
	for _, ep := range old.Endpoints() {
		delete(s.endpointByID, ep.ID)
		delete(s.ownerByEndpointID, ep.ID)
		delete(s.outEdgesByOutputID, ep.ID)
		delete(s.inEdgesByInputID, ep.ID)
	}
	delete(s.endpointsByNodeID, id)
	delete(s.outEdgesByNodeID, id)
	delete(s.inEdgesByNodeID, id)
	delete(s.nodeByID, id)
	if pos, ok := s.nodeOrderPos[id]; ok {
		s.nodeOrder.Remove(pos)
		delete(s.nodeOrderPos, id)
	}
	return old
}

func (s *Store) insertEdge(e graph.Edge) {
	s.edgeByID[e.ID] = e
	s.edgeOrderPos[e.ID] = s.edgeOrder.PushBack(e.ID)

	s.adjSeqFor(s.outEdgesByNodeID, e.Source.NodeID).push(e.ID)
	s.adjSeqFor(s.inEdgesByNodeID, e.Target.NodeID).push(e.ID)
	s.adjSeqFor(s.outEdgesByOutputID, e.Source.EndpointID).push(e.ID)
	s.adjSeqFor(s.inEdgesByInputID, e.Target.EndpointID).push(e.ID)
}

func (s *Store) removeEdge(id string) graph.Edge {
	old := s.edgeByID[id]
	if seq, ok := s.outEdgesByNodeID[old.Source.NodeID]; ok {
		seq.remove(id)
	}
	if seq, ok := s.inEdgesByNodeID[old.Target.NodeID]; ok {
		seq.remove(id)
	}
	if seq, ok := s.outEdgesByOutputID[old.Source.EndpointID]; ok {
		seq.remove(id)
	}
	if seq, ok := s.inEdgesByInputID[old.Target.EndpointID]; ok {
		seq.remove(id)
	}
	delete(s.edgeByID, id)
	if pos, ok := s.edgeOrderPos[id]; ok {
		s.edgeOrder.Remove(pos)
		delete(s.edgeOrderPos, id)
	}
	return old
}

func (s *Store) adjSeqFor(m map[string]*idSeq, key string) *idSeq {
	seq, ok := m[key]
	if !ok {
		seq = newIDSeq()
		m[key] = seq
	}
	return seq
}

// incidentEdges returns every edge id touching nodeID, used by the
// high-level removeNode convenience in the workspace editor (§4.5 step 3).
func (s *Store) incidentEdges(nodeID string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, id := range s.Outgoing(nodeID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range s.Incoming(nodeID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// IncidentEdges exposes incidentEdges publicly for callers (the workspace
// editor's removeNode convenience, §4.5 step 3) that need every edge
// touching a node before emitting a single combined patch.
func (s *Store) IncidentEdges(nodeID string) []string {
	return s.incidentEdges(nodeID)
}
