// Package graph defines the immutable value model for the graph engine:
// contracts, endpoints, nodes, edges and graph snapshots.
//
// Every type in this package is a plain, immutable value. Nothing in this
// package mutates state that escapes a constructor — mutation is the job
// of the store package, which holds the one mutable index over a graph's
// contents. Values here are built by callers or by deserialization and are
// never touched again; a "replace" is always a whole new value, not a
// field update.
//
// Example Usage:
//
//	a := graph.NewNode("a", "source", "", nil,
//		[]graph.Endpoint{graph.NewOutput("a.out", "out", graph.Contract{Flow: "string"}, nil)},
//		nil,
//	)
//	b := graph.NewNode("b", "sink", "",
//		[]graph.Endpoint{graph.NewInput("b.in", "in", graph.Contract{Flow: "string"}, nil)},
//		nil, nil,
//	)
//	e := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"},
//		graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
//	g := graph.New([]graph.Node{a, b}, []graph.Edge{e}, nil)
package graph

// Role distinguishes the two endpoint variants. Inputs and outputs share an
// identical shape; role is the only discriminator (§9: "model as variants
// of a single sum type… not by inheritance").
type Role int

const (
	// RoleInput marks an endpoint that receives an edge.
	RoleInput Role = iota
	// RoleOutput marks an endpoint that originates an edge.
	RoleOutput
)

func (r Role) String() string {
	if r == RoleInput {
		return "input"
	}
	return "output"
}

// Contract is the immutable "flow type" protocol carried by an endpoint.
// Flow is the only field used for compatibility checks; Schema is opaque
// data carried through but never interpreted by the engine.
type Contract struct {
	Flow   string
	Schema any
}

// Endpoint is a connection point owned by exactly one node. Id is globally
// unique across a graph. Metadata is opaque, caller-owned data.
type Endpoint struct {
	ID       string
	Name     string
	Role     Role
	Contract Contract
	Metadata map[string]any
}

// NewInput builds an Input-role endpoint.
func NewInput(id, name string, contract Contract, metadata map[string]any) Endpoint {
	return Endpoint{ID: id, Name: name, Role: RoleInput, Contract: contract, Metadata: metadata}
}

// NewOutput builds an Output-role endpoint.
func NewOutput(id, name string, contract Contract, metadata map[string]any) Endpoint {
	return Endpoint{ID: id, Name: name, Role: RoleOutput, Contract: contract, Metadata: metadata}
}

// Reference is a pair of opaque ids used by an Edge to name one of its
// ends, decoupling edges from endpoint instances (§3). There is no pointer
// identity implied: two References are equal iff their fields are equal.
type Reference struct {
	NodeID     string
	EndpointID string
}

// Node is an immutable container of input and output endpoints. Inputs and
// outputs are ordered sequences; order is preserved across replace/undo and
// is part of a node's identity for round-trip purposes.
type Node struct {
	ID       string
	Type     string
	Name     string
	Inputs   []Endpoint
	Outputs  []Endpoint
	Metadata map[string]any
}

// NewNode builds a Node, copying the given endpoint slices so the caller's
// backing arrays can't be mutated out from under the returned value.
func NewNode(id, typ, name string, inputs, outputs []Endpoint, metadata map[string]any) Node {
	return Node{
		ID:       id,
		Type:     typ,
		Name:     name,
		Inputs:   append([]Endpoint(nil), inputs...),
		Outputs:  append([]Endpoint(nil), outputs...),
		Metadata: metadata,
	}
}

// Endpoints returns inputs followed by outputs, the canonical endpoint
// iteration order for a node (§4.2's endpointsByNodeId ordering).
func (n Node) Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(n.Inputs)+len(n.Outputs))
	out = append(out, n.Inputs...)
	out = append(out, n.Outputs...)
	return out
}

// Edge is a directed connection between two endpoints, referenced by id
// pairs rather than object pointers. By convention Source resolves to an
// Output and Target to an Input; the engine enforces this via the
// "direction" validation rule, not via this constructor.
type Edge struct {
	ID       string
	Source   Reference
	Target   Reference
	Metadata map[string]any
}

// NewEdge builds an Edge.
func NewEdge(id string, source, target Reference, metadata map[string]any) Edge {
	return Edge{ID: id, Source: source, Target: target, Metadata: metadata}
}

// Graph is an immutable snapshot of nodes and edges. Iteration order over
// Nodes/Edges is insertion-order stable within one snapshot (§3); callers
// must not rely on it across independently constructed snapshots.
type Graph struct {
	nodeOrder []string
	edgeOrder []string
	nodes     map[string]Node
	edges     map[string]Edge
	Metadata  map[string]any
}

// New builds a Graph snapshot from slices of nodes and edges, preserving
// the order the slices were given in. Callers are responsible for passing
// already-valid data; New itself performs no structural validation — that
// is the store's job (§3 invariants are "enforced by Store").
func New(nodes []Node, edges []Edge, metadata map[string]any) Graph {
	g := Graph{
		nodeOrder: make([]string, 0, len(nodes)),
		edgeOrder: make([]string, 0, len(edges)),
		nodes:     make(map[string]Node, len(nodes)),
		edges:     make(map[string]Edge, len(edges)),
		Metadata:  metadata,
	}
	for _, n := range nodes {
		if _, exists := g.nodes[n.ID]; !exists {
			g.nodeOrder = append(g.nodeOrder, n.ID)
		}
		g.nodes[n.ID] = n
	}
	for _, e := range edges {
		if _, exists := g.edges[e.ID]; !exists {
			g.edgeOrder = append(g.edgeOrder, e.ID)
		}
		g.edges[e.ID] = e
	}
	return g
}

// Node looks up a node by id.
func (g Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge looks up an edge by id.
func (g Graph) Edge(id string) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns all nodes in insertion order.
func (g Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// NodeCount returns the number of nodes in the snapshot.
func (g Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges in the snapshot.
func (g Graph) EdgeCount() int { return len(g.edgeOrder) }
