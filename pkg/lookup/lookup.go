// Package lookup implements the incremental secondary index described in
// §4.3: a read surface identical to store.Reader, maintained independently
// via ApplyPatch so that reads during an in-progress Workspace edit see
// the same state the Store does, without the workspace needing to ask the
// Store for every read.
//
// Lookup never originates validation — it trusts that whatever patch it is
// given has already been accepted by a store.Store. It performs the same
// canonical-order index maintenance the Store does (see
// pkg/store/apply.go) but skips the hard-error checks, since by
// construction a patch only reaches Lookup.ApplyPatch after
// store.Store.Apply has already accepted it (or, for rollback, after the
// store has already accepted the corresponding undo).
package lookup

import (
	"container/list"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// Lookup is a secondary, independently updatable index over a graph's
// current nodes/edges and adjacency, mirroring store.Store's read surface.
type Lookup struct {
	nodeByID map[string]graph.Node
	edgeByID map[string]graph.Edge

	endpointByID      map[string]graph.Endpoint
	ownerByEndpointID map[string]string

	endpointsByNodeID  map[string]*seq
	outEdgesByNodeID   map[string]*seq
	inEdgesByNodeID    map[string]*seq
	outEdgesByOutputID map[string]*seq
	inEdgesByInputID   map[string]*seq

	nodeOrder    *list.List
	nodeOrderPos map[string]*list.Element
	edgeOrder    *list.List
	edgeOrderPos map[string]*list.Element
}

// New creates an empty Lookup.
func New() *Lookup {
	return &Lookup{
		nodeByID:           make(map[string]graph.Node),
		edgeByID:           make(map[string]graph.Edge),
		endpointByID:       make(map[string]graph.Endpoint),
		ownerByEndpointID:  make(map[string]string),
		endpointsByNodeID:  make(map[string]*seq),
		outEdgesByNodeID:   make(map[string]*seq),
		inEdgesByNodeID:    make(map[string]*seq),
		outEdgesByOutputID: make(map[string]*seq),
		inEdgesByInputID:   make(map[string]*seq),
		nodeOrder:          list.New(),
		nodeOrderPos:       make(map[string]*list.Element),
		edgeOrder:          list.New(),
		edgeOrderPos:       make(map[string]*list.Element),
	}
}

// FromGraph builds a Lookup pre-loaded with g's contents, in g's order.
func FromGraph(g graph.Graph) *Lookup {
	l := New()
	for _, n := range g.Nodes() {
		l.insertNode(n)
	}
	for _, e := range g.Edges() {
		l.insertEdge(e)
	}
	return l
}

// ApplyPatch applies p's operations in the canonical order (§4.1 step 2),
// keeping the lookup's indices consistent with whatever the Store has
// already accepted.
func (l *Lookup) ApplyPatch(p patch.Patch) {
	for _, n := range p.NodeReplace {
		if old, ok := l.nodeByID[n.ID]; ok {
			l.replaceNodeEndpoints(old, n)
		}
		l.nodeByID[n.ID] = n
	}
	for _, e := range p.EdgeReplace {
		l.removeEdge(e.ID)
		l.insertEdge(e)
	}
	for _, id := range p.EdgeRemove {
		l.removeEdge(id)
	}
	for _, id := range p.NodeRemove {
		l.removeNode(id)
	}
	for _, n := range p.NodeAdd {
		l.insertNode(n)
	}
	for _, e := range p.EdgeAdd {
		l.insertEdge(e)
	}
}

var _ store.Reader = (*Lookup)(nil)
