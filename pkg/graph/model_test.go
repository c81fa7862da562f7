package graph

import (
	"reflect"
	"testing"
)

func TestGraphIterationOrder(t *testing.T) {
	a := NewNode("a", "t", "", nil, nil, nil)
	b := NewNode("b", "t", "", nil, nil, nil)
	c := NewNode("c", "t", "", nil, nil, nil)
	g := New([]Node{a, b, c}, nil, nil)

	t.Run("nodes preserve insertion order", func(t *testing.T) {
		ids := make([]string, 0, 3)
		for _, n := range g.Nodes() {
			ids = append(ids, n.ID)
		}
		if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
			t.Fatalf("unexpected order: %v", ids)
		}
	})
}

func TestNodeEndpointsOrder(t *testing.T) {
	in := NewInput("i1", "in", Contract{Flow: "string"}, nil)
	out := NewOutput("o1", "out", Contract{Flow: "string"}, nil)
	n := NewNode("n", "t", "", []Endpoint{in}, []Endpoint{out}, nil)

	eps := n.Endpoints()
	if len(eps) != 2 || eps[0].ID != "i1" || eps[1].ID != "o1" {
		t.Fatalf("expected inputs then outputs, got %+v", eps)
	}
}

func TestRoleString(t *testing.T) {
	if RoleInput.String() != "input" || RoleOutput.String() != "output" {
		t.Fatalf("unexpected role strings")
	}
}

func TestFromValueRoundTrip(t *testing.T) {
	in := NewInput("b.in", "in", Contract{Flow: "string"}, nil)
	out := NewOutput("a.out", "out", Contract{Flow: "string"}, map[string]any{"k": "v"})
	a := NewNode("a", "source", "A", nil, []Endpoint{out}, nil)
	b := NewNode("b", "sink", "B", []Endpoint{in}, nil, nil)
	e := NewEdge("e1", Reference{NodeID: "a", EndpointID: "a.out"}, Reference{NodeID: "b", EndpointID: "b.in"}, nil)
	g := New([]Node{a, b}, []Edge{e}, map[string]any{"title": "demo"})

	round := FromValue(g.ToValue())

	if round.NodeCount() != g.NodeCount() || round.EdgeCount() != g.EdgeCount() {
		t.Fatalf("round trip changed counts")
	}
	for _, want := range g.Nodes() {
		got, ok := round.Node(want.ID)
		if !ok {
			t.Fatalf("missing node %s after round trip", want.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("node %s changed: got %+v want %+v", want.ID, got, want)
		}
	}
	for _, want := range g.Edges() {
		got, ok := round.Edge(want.ID)
		if !ok {
			t.Fatalf("missing edge %s after round trip", want.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("edge %s changed: got %+v want %+v", want.ID, got, want)
		}
	}
	if !reflect.DeepEqual(round.Metadata, g.Metadata) {
		t.Fatalf("metadata changed: got %+v want %+v", round.Metadata, g.Metadata)
	}

	gotIDs := make([]string, 0)
	for _, n := range round.Nodes() {
		gotIDs = append(gotIDs, n.ID)
	}
	if !reflect.DeepEqual(gotIDs, []string{"a", "b"}) {
		t.Fatalf("round trip lost node order: %v", gotIDs)
	}
}
