package lookup

import "github.com/flowgraph/graphengine/pkg/graph"

func (l *Lookup) HasNode(id string) bool     { _, ok := l.nodeByID[id]; return ok }
func (l *Lookup) HasEdge(id string) bool     { _, ok := l.edgeByID[id]; return ok }
func (l *Lookup) HasEndpoint(id string) bool { _, ok := l.endpointByID[id]; return ok }

func (l *Lookup) Node(id string) (graph.Node, bool) { n, ok := l.nodeByID[id]; return n, ok }
func (l *Lookup) Edge(id string) (graph.Edge, bool) { e, ok := l.edgeByID[id]; return e, ok }

func (l *Lookup) Endpoint(id string) (graph.Endpoint, bool) {
	ep, ok := l.endpointByID[id]
	return ep, ok
}

func (l *Lookup) Input(id string) (graph.Endpoint, bool) {
	ep, ok := l.endpointByID[id]
	if !ok || ep.Role != graph.RoleInput {
		return graph.Endpoint{}, false
	}
	return ep, true
}

func (l *Lookup) Output(id string) (graph.Endpoint, bool) {
	ep, ok := l.endpointByID[id]
	if !ok || ep.Role != graph.RoleOutput {
		return graph.Endpoint{}, false
	}
	return ep, true
}

func (l *Lookup) Owner(endpointID string) (string, bool) {
	id, ok := l.ownerByEndpointID[endpointID]
	return id, ok
}

func (l *Lookup) Endpoints(nodeID string) []string {
	s, ok := l.endpointsByNodeID[nodeID]
	if !ok {
		return nil
	}
	return s.values()
}

func (l *Lookup) Outgoing(nodeID string) []string {
	s, ok := l.outEdgesByNodeID[nodeID]
	if !ok {
		return nil
	}
	return s.values()
}

func (l *Lookup) Incoming(nodeID string) []string {
	s, ok := l.inEdgesByNodeID[nodeID]
	if !ok {
		return nil
	}
	return s.values()
}

func (l *Lookup) OutputEdges(outputID string) []string {
	s, ok := l.outEdgesByOutputID[outputID]
	if !ok {
		return nil
	}
	return s.values()
}

func (l *Lookup) InputEdges(inputID string) []string {
	s, ok := l.inEdgesByInputID[inputID]
	if !ok {
		return nil
	}
	return s.values()
}

func (l *Lookup) ListNodes() []string {
	out := make([]string, 0, l.nodeOrder.Len())
	for e := l.nodeOrder.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

func (l *Lookup) ListEdges() []string {
	out := make([]string, 0, l.edgeOrder.Len())
	for e := l.edgeOrder.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}
