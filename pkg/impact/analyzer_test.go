package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/impact"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
)

func chainABC(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	a := graph.NewNode("a", "t", "", nil,
		[]graph.Endpoint{graph.NewOutput("a.out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
	b := graph.NewNode("b", "t", "",
		[]graph.Endpoint{graph.NewInput("b.in", "in", graph.Contract{Flow: "string"}, nil)},
		[]graph.Endpoint{graph.NewOutput("b.out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
	c := graph.NewNode("c", "t", "", []graph.Endpoint{graph.NewInput("c.in", "in", graph.Contract{Flow: "string"}, nil)}, nil, nil)
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b, c}})
	require.NoError(t, err)

	e1 := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	e2 := graph.NewEdge("e2", graph.Reference{NodeID: "b", EndpointID: "b.out"}, graph.Reference{NodeID: "c", EndpointID: "c.in"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e1, e2}})
	require.NoError(t, err)
	return s
}

// TestS6DownstreamDepth1 mirrors boundary scenario S6.
func TestS6DownstreamDepth1(t *testing.T) {
	s := chainABC(t)
	bPrime := graph.NewNode("b", "t", "renamed",
		[]graph.Endpoint{graph.NewInput("b.in", "in", graph.Contract{Flow: "string"}, nil)},
		[]graph.Endpoint{graph.NewOutput("b.out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
	p := patch.Patch{NodeReplace: []graph.Node{bPrime}}

	a := impact.NewDefault()
	res := a.Analyze(s, p, impact.Options{
		Direction:    impact.Downstream,
		Depth:        impact.IntPtr(1),
		IncludeSeeds: impact.BoolPtr(true),
	})
	assert.ElementsMatch(t, []string{"b", "c"}, res.NodeIDs)

	res = a.Analyze(s, p, impact.Options{
		Direction:    impact.Upstream,
		Depth:        impact.IntPtr(1),
		IncludeSeeds: impact.BoolPtr(true),
	})
	assert.ElementsMatch(t, []string{"b", "a"}, res.NodeIDs)
}

func TestIncludeSeedsFalseExcludesSeed(t *testing.T) {
	s := chainABC(t)
	p := patch.Patch{NodeReplace: []graph.Node{mustNode(t, s, "b")}}

	a := impact.NewDefault()
	res := a.Analyze(s, p, impact.Options{
		Direction:    impact.Downstream,
		Depth:        impact.IntPtr(1),
		IncludeSeeds: impact.BoolPtr(false),
	})
	assert.ElementsMatch(t, []string{"c"}, res.NodeIDs)
}

func TestIncludeBoundaryPullsInOuterNodes(t *testing.T) {
	s := chainABC(t)
	p := patch.Patch{NodeReplace: []graph.Node{mustNode(t, s, "b")}}

	a := impact.NewDefault()
	res := a.Analyze(s, p, impact.Options{
		Direction:       impact.Downstream,
		Depth:           impact.IntPtr(0),
		IncludeSeeds:    impact.BoolPtr(true),
		IncludeBoundary: true,
	})
	// core is just {b}; boundary pulls in a (upstream edge e1) and c
	// (downstream edge e2) without traversing past depth 0.
	assert.ElementsMatch(t, []string{"b", "a", "c"}, res.NodeIDs)
	assert.ElementsMatch(t, []string{"e1", "e2"}, res.EdgeIDs)
}

func TestStopNodeHaltsPropagation(t *testing.T) {
	s := chainABC(t)
	p := patch.Patch{NodeReplace: []graph.Node{mustNode(t, s, "a")}}

	a := impact.NewDefault()
	res := a.Analyze(s, p, impact.Options{
		Direction: impact.Downstream,
		StopNodes: []string{"b"},
	})
	// b is visited (it's the stop node) but c beyond it is never reached.
	assert.ElementsMatch(t, []string{"a", "b"}, res.NodeIDs)
}

func TestTaggedSemanticsOnlyFollowsTaggedEdges(t *testing.T) {
	s := store.New()
	a := graph.NewNode("a", "t", "", nil,
		[]graph.Endpoint{graph.NewOutput("a.out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
	b := graph.NewNode("b", "t", "", []graph.Endpoint{graph.NewInput("b.in", "in", graph.Contract{Flow: "string"}, nil)}, nil, nil)
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	require.NoError(t, err)

	untagged := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{untagged}})
	require.NoError(t, err)

	az := impact.New(impact.NewTagged("impact"))
	res := az.Analyze(s, patch.Patch{NodeReplace: []graph.Node{a}}, impact.Options{Direction: impact.Downstream})
	assert.ElementsMatch(t, []string{"a"}, res.NodeIDs)
}

func mustNode(t *testing.T, s *store.Store, id string) graph.Node {
	t.Helper()
	n, ok := s.Node(id)
	require.True(t, ok)
	return n
}
