package patch

import "github.com/flowgraph/graphengine/pkg/graph"

// Log is the append-only merger a Workspace transaction accumulates editor
// patches into (§4.5). nodeRemove/edgeRemove merge as de-duplicating sets;
// the add/replace categories merge as ordered sequences in edit order, the
// way the teacher's Transaction buffers one Operation per call and replays
// them in call order (pkg/storage/transaction.go's operations slice).
type Log struct {
	nodeAdd      []graph.Node
	nodeAddSeen  map[string]int // id -> index in nodeAdd, for last-wins replace-in-place
	nodeReplace  []graph.Node
	nodeRepSeen  map[string]int
	nodeRemove   []string
	nodeRemoveAt map[string]struct{}

	edgeAdd      []graph.Edge
	edgeAddSeen  map[string]int
	edgeReplace  []graph.Edge
	edgeRepSeen  map[string]int
	edgeRemove   []string
	edgeRemoveAt map[string]struct{}
}

// NewLog creates an empty merged-patch accumulator.
func NewLog() *Log {
	return &Log{
		nodeAddSeen:  make(map[string]int),
		nodeRepSeen:  make(map[string]int),
		nodeRemoveAt: make(map[string]struct{}),
		edgeAddSeen:  make(map[string]int),
		edgeRepSeen:  make(map[string]int),
		edgeRemoveAt: make(map[string]struct{}),
	}
}

// Merge folds p into the log, in the order the editor issued it.
func (l *Log) Merge(p Patch) {
	for _, n := range p.NodeAdd {
		if i, ok := l.nodeAddSeen[n.ID]; ok {
			l.nodeAdd[i] = n
			continue
		}
		l.nodeAddSeen[n.ID] = len(l.nodeAdd)
		l.nodeAdd = append(l.nodeAdd, n)
	}
	for _, n := range p.NodeReplace {
		if i, ok := l.nodeRepSeen[n.ID]; ok {
			l.nodeReplace[i] = n
			continue
		}
		l.nodeRepSeen[n.ID] = len(l.nodeReplace)
		l.nodeReplace = append(l.nodeReplace, n)
	}
	for _, id := range p.NodeRemove {
		if _, ok := l.nodeRemoveAt[id]; ok {
			continue
		}
		l.nodeRemoveAt[id] = struct{}{}
		l.nodeRemove = append(l.nodeRemove, id)
	}

	for _, e := range p.EdgeAdd {
		if i, ok := l.edgeAddSeen[e.ID]; ok {
			l.edgeAdd[i] = e
			continue
		}
		l.edgeAddSeen[e.ID] = len(l.edgeAdd)
		l.edgeAdd = append(l.edgeAdd, e)
	}
	for _, e := range p.EdgeReplace {
		if i, ok := l.edgeRepSeen[e.ID]; ok {
			l.edgeReplace[i] = e
			continue
		}
		l.edgeRepSeen[e.ID] = len(l.edgeReplace)
		l.edgeReplace = append(l.edgeReplace, e)
	}
	for _, id := range p.EdgeRemove {
		if _, ok := l.edgeRemoveAt[id]; ok {
			continue
		}
		l.edgeRemoveAt[id] = struct{}{}
		l.edgeRemove = append(l.edgeRemove, id)
	}
}

// Patch returns the merged patch accumulated so far. Empty categories are
// omitted (nil slices), per §4.5.
func (l *Log) Patch() Patch {
	p := Patch{}
	if len(l.nodeAdd) > 0 {
		p.NodeAdd = append([]graph.Node(nil), l.nodeAdd...)
	}
	if len(l.nodeReplace) > 0 {
		p.NodeReplace = append([]graph.Node(nil), l.nodeReplace...)
	}
	if len(l.nodeRemove) > 0 {
		p.NodeRemove = append([]string(nil), l.nodeRemove...)
	}
	if len(l.edgeAdd) > 0 {
		p.EdgeAdd = append([]graph.Edge(nil), l.edgeAdd...)
	}
	if len(l.edgeReplace) > 0 {
		p.EdgeReplace = append([]graph.Edge(nil), l.edgeReplace...)
	}
	if len(l.edgeRemove) > 0 {
		p.EdgeRemove = append([]string(nil), l.edgeRemove...)
	}
	return p
}
