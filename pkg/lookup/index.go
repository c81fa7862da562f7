package lookup

import "github.com/flowgraph/graphengine/pkg/graph"

func (l *Lookup) insertNode(n graph.Node) {
	l.nodeByID[n.ID] = n
	l.nodeOrderPos[n.ID] = l.nodeOrder.PushBack(n.ID)

	s := newSeq()
	for _, ep := range n.Endpoints() {
		l.endpointByID[ep.ID] = ep
		l.ownerByEndpointID[ep.ID] = n.ID
		s.push(ep.ID)
	}
	l.endpointsByNodeID[n.ID] = s

	if _, ok := l.outEdgesByNodeID[n.ID]; !ok {
		l.outEdgesByNodeID[n.ID] = newSeq()
	}
	if _, ok := l.inEdgesByNodeID[n.ID]; !ok {
		l.inEdgesByNodeID[n.ID] = newSeq()
	}
}

func (l *Lookup) removeNode(id string) {
	old, ok := l.nodeByID[id]
	if !ok {
		return
	}
	for _, ep := range old.Endpoints() {
		delete(l.endpointByID, ep.ID)
		delete(l.ownerByEndpointID, ep.ID)
		delete(l.outEdgesByOutputID, ep.ID)
		delete(l.inEdgesByInputID, ep.ID)
	}
	delete(l.endpointsByNodeID, id)
	delete(l.outEdgesByNodeID, id)
	delete(l.inEdgesByNodeID, id)
	delete(l.nodeByID, id)
	if pos, ok := l.nodeOrderPos[id]; ok {
		l.nodeOrder.Remove(pos)
		delete(l.nodeOrderPos, id)
	}
}

func (l *Lookup) insertEdge(e graph.Edge) {
	l.edgeByID[e.ID] = e
	l.edgeOrderPos[e.ID] = l.edgeOrder.PushBack(e.ID)

	l.seqFor(l.outEdgesByNodeID, e.Source.NodeID).push(e.ID)
	l.seqFor(l.inEdgesByNodeID, e.Target.NodeID).push(e.ID)
	l.seqFor(l.outEdgesByOutputID, e.Source.EndpointID).push(e.ID)
	l.seqFor(l.inEdgesByInputID, e.Target.EndpointID).push(e.ID)
}

func (l *Lookup) removeEdge(id string) {
	old, ok := l.edgeByID[id]
	if !ok {
		return
	}
	if s, ok := l.outEdgesByNodeID[old.Source.NodeID]; ok {
		s.remove(id)
	}
	if s, ok := l.inEdgesByNodeID[old.Target.NodeID]; ok {
		s.remove(id)
	}
	if s, ok := l.outEdgesByOutputID[old.Source.EndpointID]; ok {
		s.remove(id)
	}
	if s, ok := l.inEdgesByInputID[old.Target.EndpointID]; ok {
		s.remove(id)
	}
	delete(l.edgeByID, id)
	if pos, ok := l.edgeOrderPos[id]; ok {
		l.edgeOrder.Remove(pos)
		delete(l.edgeOrderPos, id)
	}
}

func (l *Lookup) seqFor(m map[string]*seq, key string) *seq {
	s, ok := m[key]
	if !ok {
		s = newSeq()
		m[key] = s
	}
	return s
}

func (l *Lookup) replaceNodeEndpoints(old, next graph.Node) {
	nextIDs := make(map[string]struct{})
	for _, ep := range next.Endpoints() {
		nextIDs[ep.ID] = struct{}{}
	}
	for _, ep := range old.Endpoints() {
		if _, kept := nextIDs[ep.ID]; kept {
			continue
		}
		delete(l.endpointByID, ep.ID)
		delete(l.ownerByEndpointID, ep.ID)
		delete(l.outEdgesByOutputID, ep.ID)
		delete(l.inEdgesByInputID, ep.ID)
	}

	s := newSeq()
	for _, ep := range next.Endpoints() {
		l.endpointByID[ep.ID] = ep
		l.ownerByEndpointID[ep.ID] = next.ID
		s.push(ep.ID)
	}
	l.endpointsByNodeID[next.ID] = s
}
