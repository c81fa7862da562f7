package store

import (
	"reflect"
	"testing"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
)

func nodeWithOutput(id string) graph.Node {
	return graph.NewNode(id, "t", "", nil,
		[]graph.Endpoint{graph.NewOutput(id+".out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
}

func nodeWithInput(id string) graph.Node {
	return graph.NewNode(id, "t", "", []graph.Endpoint{graph.NewInput(id+".in", "in", graph.Contract{Flow: "string"}, nil)}, nil, nil)
}

func TestApplyAddNodeAndEdge(t *testing.T) {
	s := New()
	a := nodeWithOutput("a")
	b := nodeWithInput("b")

	if _, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edge := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	if _, err := s.Apply(patch.Patch{EdgeAdd: []graph.Edge{edge}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := s.ToGraph()
	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 edge, got %d", g.EdgeCount())
	}
	if got := s.Outgoing("a"); !reflect.DeepEqual(got, []string{"e1"}) {
		t.Fatalf("unexpected outgoing: %v", got)
	}
	if got := s.Incoming("b"); !reflect.DeepEqual(got, []string{"e1"}) {
		t.Fatalf("unexpected incoming: %v", got)
	}
}

func TestApplyDuplicateNodeID(t *testing.T) {
	s := New()
	a := nodeWithOutput("a")
	if _, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}})
	var dup *DuplicateIDError
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !asError(err, &dup) {
		t.Fatalf("expected *DuplicateIDError, got %T: %v", err, err)
	}
}

func TestApplyConflictingPatchID(t *testing.T) {
	s := New()
	a := nodeWithOutput("a")
	_, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}, NodeRemove: []string{"a"}})
	var conf *ConflictingPatchIDError
	if !asError(err, &conf) {
		t.Fatalf("expected *ConflictingPatchIDError, got %T: %v", err, err)
	}
}

func TestApplyRemoveNodeWithIncidentEdgeFails(t *testing.T) {
	s := New()
	a, b := nodeWithOutput("a"), nodeWithInput("b")
	s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	edge := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	s.Apply(patch.Patch{EdgeAdd: []graph.Edge{edge}})

	_, err := s.Apply(patch.Patch{NodeRemove: []string{"a"}})
	var dangling *DanglingEndpointError
	if !asError(err, &dangling) {
		t.Fatalf("expected *DanglingEndpointError, got %T: %v", err, err)
	}
	// store must be unchanged: node a still present.
	if !s.HasNode("a") {
		t.Fatal("node a should still exist after failed removal")
	}
}

func TestApplyRemoveNodeCascadeSucceedsWhenEdgesGoneFirst(t *testing.T) {
	s := New()
	a, b := nodeWithOutput("a"), nodeWithInput("b")
	s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	edge := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	s.Apply(patch.Patch{EdgeAdd: []graph.Edge{edge}})

	// Canonical order removes edges before nodes within one patch.
	_, err := s.Apply(patch.Patch{EdgeRemove: []string{"e1"}, NodeRemove: []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HasNode("a") || s.HasEdge("e1") {
		t.Fatal("expected both node and edge removed")
	}
}

// TestUndoRestoresState is the engine's P2/S5 property: applying undo
// restores a structurally equal index.
func TestUndoRestoresState(t *testing.T) {
	s := New()
	a := nodeWithOutput("a")

	undoAdd, err := s.Apply(patch.Patch{NodeAdd: []graph.Node{a}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshotAfterAdd := s.ToGraph().ToValue()

	undoRemove, err := s.Apply(patch.Patch{NodeRemove: []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HasNode("a") {
		t.Fatal("node should be removed")
	}

	if _, err := s.Apply(undoRemove); err != nil {
		t.Fatalf("unexpected error applying undo of remove: %v", err)
	}
	if !reflect.DeepEqual(s.ToGraph().ToValue(), snapshotAfterAdd) {
		t.Fatal("undo of remove did not restore state after add")
	}

	if _, err := s.Apply(undoAdd); err != nil {
		t.Fatalf("unexpected error applying undo of add: %v", err)
	}
	if s.HasNode("a") {
		t.Fatal("undo of add should remove the node again")
	}
}

func TestReplaceNodeKeepsSharedEndpoints(t *testing.T) {
	s := New()
	a, b := nodeWithOutput("a"), nodeWithInput("b")
	s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	edge := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	s.Apply(patch.Patch{EdgeAdd: []graph.Edge{edge}})

	renamed := graph.NewNode("a", "t", "renamed", nil,
		[]graph.Endpoint{graph.NewOutput("a.out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
	if _, err := s.Apply(patch.Patch{NodeReplace: []graph.Node{renamed}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.HasEdge("e1") {
		t.Fatal("edge referencing kept endpoint should survive replace")
	}
}

func TestReplaceNodeDroppingEndpointWithEdgeFails(t *testing.T) {
	s := New()
	a, b := nodeWithOutput("a"), nodeWithInput("b")
	s.Apply(patch.Patch{NodeAdd: []graph.Node{a, b}})
	edge := graph.NewEdge("e1", graph.Reference{NodeID: "a", EndpointID: "a.out"}, graph.Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	s.Apply(patch.Patch{EdgeAdd: []graph.Edge{edge}})

	stripped := graph.NewNode("a", "t", "stripped", nil, nil, nil)
	_, err := s.Apply(patch.Patch{NodeReplace: []graph.Node{stripped}})
	var dangling *DanglingEndpointError
	if !asError(err, &dangling) {
		t.Fatalf("expected *DanglingEndpointError, got %T: %v", err, err)
	}
}

// asError is a tiny helper mirroring errors.As without importing errors
// just for pointer-to-pointer assertions in these tests.
func asError[E error](err error, target *E) bool {
	e, ok := err.(E)
	if !ok {
		return false
	}
	*target = e
	return true
}
