package store

import "github.com/flowgraph/graphengine/pkg/graph"

// Reader is the read surface shared by Store and the incremental lookup
// index (§4.2, §4.3 — "conceptually identical read surface"). Validators,
// the impact analyzer and the workspace's editor all read through this
// interface so they work identically against either implementation.
//
// All methods are O(1) or O(k) where k is the size of the returned
// adjacency, per §4.2.
type Reader interface {
	HasNode(id string) bool
	HasEdge(id string) bool
	HasEndpoint(id string) bool

	Node(id string) (graph.Node, bool)
	Edge(id string) (graph.Edge, bool)
	Endpoint(id string) (graph.Endpoint, bool)
	Input(id string) (graph.Endpoint, bool)
	Output(id string) (graph.Endpoint, bool)

	// Owner returns the node id that owns the given endpoint id.
	Owner(endpointID string) (string, bool)

	// Endpoints returns the endpoint ids owned by a node, inputs then
	// outputs.
	Endpoints(nodeID string) []string

	// Outgoing returns edge ids whose Source.NodeID is nodeID.
	Outgoing(nodeID string) []string
	// Incoming returns edge ids whose Target.NodeID is nodeID.
	Incoming(nodeID string) []string

	// OutputEdges returns edge ids whose Source.EndpointID is the given
	// output id.
	OutputEdges(outputID string) []string
	// InputEdges returns edge ids whose Target.EndpointID is the given
	// input id.
	InputEdges(inputID string) []string

	// ListNodes returns all node ids in insertion order.
	ListNodes() []string
	// ListEdges returns all edge ids in insertion order.
	ListEdges() []string
}
