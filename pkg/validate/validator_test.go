package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
	"github.com/flowgraph/graphengine/pkg/validate"
)

func nodeOut(id, flow string) graph.Node {
	return graph.NewNode(id, "t", "", nil,
		[]graph.Endpoint{graph.NewOutput(id+".out", "out", graph.Contract{Flow: flow}, nil)}, nil)
}

func nodeIn(id, flow string) graph.Node {
	return graph.NewNode(id, "t", "", []graph.Endpoint{graph.NewInput(id+".in", "in", graph.Contract{Flow: flow}, nil)}, nil, nil)
}

// TestS1AddEdgeOnNewEmptyGraph mirrors boundary scenario S1.
func TestS1AddEdgeOnNewEmptyGraph(t *testing.T) {
	s := store.New()
	a, b := nodeOut("a", "string"), nodeIn("b", "string")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	require.NoError(t, err)

	e1 := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	undo, err := s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e1}})
	require.NoError(t, err)
	_ = undo

	v := validate.New()
	diags := v.CheckAll(s, validate.Options{})
	assert.Empty(t, diags)
	assert.Equal(t, 1, s.ToGraph().EdgeCount())
}

// TestS2DirectionViolation mirrors boundary scenario S2: an edge wired
// backwards (source resolves to an Input, target to an Output).
func TestS2DirectionViolation(t *testing.T) {
	s := store.New()
	a, b := nodeOut("a", "string"), nodeIn("b", "string")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	require.NoError(t, err)

	e2 := graph.NewEdge("e2", graph.Reference{NodeID: "b", EndpointID: "b.in"}, graph.Reference{NodeID: "a", EndpointID: "a.out"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e2}})
	require.NoError(t, err) // Store itself does not enforce direction (§3 invariant 3).

	v := validate.New()
	diags := v.Check(s, patch.Patch{EdgeAdd: []graph.Edge{e2}}, validate.Options{})
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Code == validate.CodeDirection {
			found = true
			assert.Equal(t, validate.LevelError, d.Level)
			assert.Equal(t, "e2", d.Target.ID)
		}
	}
	assert.True(t, found, "expected a direction diagnostic")
}

// TestS3CardinalityUnderDefault mirrors boundary scenario S3.
func TestS3CardinalityUnderDefault(t *testing.T) {
	s := store.New()
	a, b, c := nodeOut("a", "string"), nodeIn("b", "string"), nodeOut("c", "string")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b, c}})
	require.NoError(t, err)

	e1 := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e1}})
	require.NoError(t, err)

	e2 := graph.NewEdge("e2", graph.Reference{NodeID: "c", EndpointID: "c.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e2}})
	require.NoError(t, err)

	v := validate.New()
	diags := v.Check(s, patch.Patch{EdgeAdd: []graph.Edge{e2}}, validate.Options{})
	require.NotEmpty(t, diags)
	assert.Equal(t, validate.CodeCardinality, diags[0].Code)
	assert.Equal(t, "b.in", diags[0].Target.ID)

	// AllowMultiple silences it.
	diags = v.Check(s, patch.Patch{EdgeAdd: []graph.Edge{e2}}, validate.Options{AllowMultiple: true})
	assert.Empty(t, diags)
}

// TestS4FlowMismatch mirrors boundary scenario S4.
func TestS4FlowMismatch(t *testing.T) {
	s := store.New()
	a, b := nodeOut("a", "number"), nodeIn("b", "string")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	require.NoError(t, err)

	e1 := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	_, err = s.Apply(patch.Patch{EdgeAdd: []graph.Edge{e1}})
	require.NoError(t, err)

	v := validate.New()

	diags := v.Check(s, patch.Patch{EdgeAdd: []graph.Edge{e1}}, validate.Options{MatchFlow: true})
	require.Len(t, diags, 1)
	assert.Equal(t, validate.CodeFlow, diags[0].Code)

	diags = v.Check(s, patch.Patch{EdgeAdd: []graph.Edge{e1}}, validate.Options{MatchFlow: false})
	assert.Empty(t, diags)
}

func TestReferenceRuleDetectsMissingNode(t *testing.T) {
	s := store.New()
	a := nodeOut("a", "string")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}})
	require.NoError(t, err)

	// Edge referencing a node that was never added to the store. The fake
	// overlays the edge on the store's contents, so the rule sees it while
	// the store itself never holds the dangling edge.
	dangling := graph.NewEdge("e9", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "ghost", EndpointID: "ghost.in"}, nil)

	fake := &fakeState{Reader: s, edges: map[string]graph.Edge{"e9": dangling}}
	diags := validate.New().Check(fake, patch.Patch{EdgeAdd: []graph.Edge{dangling}}, validate.Options{})
	require.NotEmpty(t, diags)
	assert.Equal(t, validate.CodeReference, diags[0].Code)
}

func TestIsolatedNodeRuleIsOptIn(t *testing.T) {
	s := store.New()
	a := graph.NewNode("a", "t", "", nil, nil, nil)
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}})
	require.NoError(t, err)

	standard := validate.New().CheckAll(s, validate.Options{})
	assert.Empty(t, standard)

	withOptional := validate.NewWith(validate.WithIsolatedNodeRule()).CheckAll(s, validate.Options{})
	require.Len(t, withOptional, 1)
	assert.Equal(t, validate.CodeIsolatedNode, withOptional[0].Code)
	assert.Equal(t, validate.LevelWarning, withOptional[0].Level)
}

// fakeState wraps a store.Reader and overlays extra edges so tests can
// exercise reference-rule failures without adding them to the store.
type fakeState struct {
	store.Reader
	edges map[string]graph.Edge
}

func (f *fakeState) Edge(id string) (graph.Edge, bool) {
	if e, ok := f.edges[id]; ok {
		return e, true
	}
	return f.Reader.Edge(id)
}

func (f *fakeState) HasEdge(id string) bool {
	if _, ok := f.edges[id]; ok {
		return true
	}
	return f.Reader.HasEdge(id)
}

func (f *fakeState) ListEdges() []string {
	out := f.Reader.ListEdges()
	for id := range f.edges {
		out = append(out, id)
	}
	return out
}
