package impact

import (
	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

// Result is the outcome of one Analyze call: the affected node/edge ids in
// deterministic order, and the induced sub-graph built from them.
type Result struct {
	NodeIDs []string
	EdgeIDs []string
	Graph   graph.Graph
}

// Analyzer runs impact analysis using a pluggable Semantics (§4.6).
type Analyzer struct {
	semantics Semantics
}

// New builds an Analyzer over a custom Semantics.
func New(semantics Semantics) *Analyzer {
	return &Analyzer{semantics: semantics}
}

// NewDefault builds an Analyzer over DefaultSemantics.
func NewDefault() *Analyzer {
	return &Analyzer{semantics: DefaultSemantics{}}
}

// Analyze computes the sub-graph affected by p, against state — the
// pre-change store.Reader (SPEC_FULL.md's fixed convention resolving §9's
// open question: callers must supply the Reader as it stood before p was
// applied, so edgeRemove seeds still resolve).
func (a *Analyzer) Analyze(state store.Reader, p patch.Patch, opts Options) Result {
	seeds := dedupe(a.semantics.Seeds(state, p))
	stop := toSet(opts.StopNodes)
	dir := opts.direction()

	depth := make(map[string]int, len(seeds))
	order := make([]string, 0, len(seeds))
	queue := make([]string, 0, len(seeds))

	enqueue := func(id string, d int) {
		if opts.Depth != nil && d > *opts.Depth {
			return
		}
		if _, seen := depth[id]; seen {
			return
		}
		depth[id] = d
		order = append(order, id)
		queue = append(queue, id)
	}

	for _, s := range seeds {
		enqueue(s, 0)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, stopped := stop[id]; stopped {
			continue
		}
		d := depth[id]
		if opts.Depth != nil && d >= *opts.Depth {
			continue
		}
		if dir == Downstream || dir == Both {
			for _, eid := range a.semantics.Outgoing(state, id) {
				if e, ok := state.Edge(eid); ok {
					enqueue(e.Target.NodeID, d+1)
				}
			}
		}
		if dir == Upstream || dir == Both {
			for _, eid := range a.semantics.Incoming(state, id) {
				if e, ok := state.Edge(eid); ok {
					enqueue(e.Source.NodeID, d+1)
				}
			}
		}
	}

	seedSet := toSet(seeds)
	core := make([]string, 0, len(order))
	for _, id := range order {
		_, isSeed := seedSet[id]
		if isSeed && !opts.includeSeeds() {
			continue
		}
		core = append(core, id)
	}
	coreSet := toSet(core)

	var edgeIDs []string
	extra := make(map[string]struct{})
	for _, eid := range state.ListEdges() {
		e, ok := state.Edge(eid)
		if !ok {
			continue
		}
		_, srcIn := coreSet[e.Source.NodeID]
		_, dstIn := coreSet[e.Target.NodeID]
		if opts.IncludeBoundary {
			if !srcIn && !dstIn {
				continue
			}
			edgeIDs = append(edgeIDs, eid)
			if !srcIn {
				extra[e.Source.NodeID] = struct{}{}
			}
			if !dstIn {
				extra[e.Target.NodeID] = struct{}{}
			}
		} else if srcIn && dstIn {
			edgeIDs = append(edgeIDs, eid)
		}
	}

	nodeIDs := append([]string{}, core...)
	for _, id := range state.ListNodes() {
		if _, ok := extra[id]; ok {
			nodeIDs = append(nodeIDs, id)
		}
	}

	nodes := make([]graph.Node, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if n, ok := state.Node(id); ok {
			nodes = append(nodes, n)
		}
	}
	edges := make([]graph.Edge, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		if e, ok := state.Edge(id); ok {
			edges = append(edges, e)
		}
	}

	return Result{
		NodeIDs: nodeIDs,
		EdgeIDs: edgeIDs,
		Graph:   graph.New(nodes, edges, nil),
	}
}
