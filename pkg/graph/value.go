package graph

// Package-level plain-data forms and conversions. These mirror the
// teacher's serializeNode/deserializeNode JSON round-trip pair
// (pkg/storage/badger_serialization.go), generalized from a single
// json.Marshal call per entity into the explicit ToValue/FromValue pair
// §6 requires, so that GraphValue composes cleanly without requiring the
// unexported Graph internals (nodeOrder/edgeOrder) to be exported.

// ContractValue is the plain-data form of a Contract.
type ContractValue struct {
	Flow   string `json:"flow"`
	Schema any    `json:"schema,omitempty"`
}

// ToValue converts a Contract to its plain-data form.
func (c Contract) ToValue() ContractValue {
	return ContractValue{Flow: c.Flow, Schema: c.Schema}
}

// FromContractValue converts a plain-data form back to a Contract.
func FromContractValue(v ContractValue) Contract {
	return Contract{Flow: v.Flow, Schema: v.Schema}
}

// ReferenceValue is the plain-data form of a Reference.
type ReferenceValue struct {
	NodeID     string `json:"nodeId"`
	EndpointID string `json:"endpointId"`
}

// ToValue converts a Reference to its plain-data form.
func (r Reference) ToValue() ReferenceValue {
	return ReferenceValue{NodeID: r.NodeID, EndpointID: r.EndpointID}
}

// FromReferenceValue converts a plain-data form back to a Reference.
func FromReferenceValue(v ReferenceValue) Reference {
	return Reference{NodeID: v.NodeID, EndpointID: v.EndpointID}
}

// EndpointValue is the plain-data form of an Endpoint. Role is carried as
// a string so the wire form is self-describing; "input"/"output" match
// Role.String().
type EndpointValue struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Contract ContractValue  `json:"contract"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToValue converts an Endpoint to its plain-data form.
func (e Endpoint) ToValue() EndpointValue {
	return EndpointValue{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role.String(),
		Contract: e.Contract.ToValue(),
		Metadata: e.Metadata,
	}
}

// FromEndpointValue converts a plain-data form back to an Endpoint.
func FromEndpointValue(v EndpointValue) Endpoint {
	role := RoleInput
	if v.Role == "output" {
		role = RoleOutput
	}
	return Endpoint{
		ID:       v.ID,
		Name:     v.Name,
		Role:     role,
		Contract: FromContractValue(v.Contract),
		Metadata: v.Metadata,
	}
}

// NodeValue is the plain-data form of a Node.
type NodeValue struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Inputs   []EndpointValue `json:"inputs"`
	Outputs  []EndpointValue `json:"outputs"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// ToValue converts a Node to its plain-data form.
func (n Node) ToValue() NodeValue {
	inputs := make([]EndpointValue, len(n.Inputs))
	for i, ep := range n.Inputs {
		inputs[i] = ep.ToValue()
	}
	outputs := make([]EndpointValue, len(n.Outputs))
	for i, ep := range n.Outputs {
		outputs[i] = ep.ToValue()
	}
	return NodeValue{
		ID:       n.ID,
		Type:     n.Type,
		Name:     n.Name,
		Inputs:   inputs,
		Outputs:  outputs,
		Metadata: n.Metadata,
	}
}

// FromNodeValue converts a plain-data form back to a Node.
func FromNodeValue(v NodeValue) Node {
	inputs := make([]Endpoint, len(v.Inputs))
	for i, ep := range v.Inputs {
		inputs[i] = FromEndpointValue(ep)
	}
	outputs := make([]Endpoint, len(v.Outputs))
	for i, ep := range v.Outputs {
		outputs[i] = FromEndpointValue(ep)
	}
	return NewNode(v.ID, v.Type, v.Name, inputs, outputs, v.Metadata)
}

// EdgeValue is the plain-data form of an Edge.
type EdgeValue struct {
	ID       string         `json:"id"`
	Source   ReferenceValue `json:"source"`
	Target   ReferenceValue `json:"target"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToValue converts an Edge to its plain-data form.
func (e Edge) ToValue() EdgeValue {
	return EdgeValue{
		ID:       e.ID,
		Source:   e.Source.ToValue(),
		Target:   e.Target.ToValue(),
		Metadata: e.Metadata,
	}
}

// FromEdgeValue converts a plain-data form back to an Edge.
func FromEdgeValue(v EdgeValue) Edge {
	return Edge{
		ID:       v.ID,
		Source:   FromReferenceValue(v.Source),
		Target:   FromReferenceValue(v.Target),
		Metadata: v.Metadata,
	}
}

// GraphValue is the plain-data form of a Graph: the sole persisted
// representation the engine defines (§1 Non-goals: no persistence layer
// beyond this canonical serialization form).
type GraphValue struct {
	Nodes    []NodeValue    `json:"nodes"`
	Edges    []EdgeValue    `json:"edges"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToValue converts a Graph to its plain-data form, preserving node/edge
// iteration order (P1 requires the round trip to preserve ordering).
func (g Graph) ToValue() GraphValue {
	nodes := g.Nodes()
	edges := g.Edges()
	nv := make([]NodeValue, len(nodes))
	for i, n := range nodes {
		nv[i] = n.ToValue()
	}
	ev := make([]EdgeValue, len(edges))
	for i, e := range edges {
		ev[i] = e.ToValue()
	}
	return GraphValue{Nodes: nv, Edges: ev, Metadata: g.Metadata}
}

// FromValue converts a plain-data form back to a Graph, preserving the
// order of v.Nodes/v.Edges (P1 — the round-trip law).
func FromValue(v GraphValue) Graph {
	nodes := make([]Node, len(v.Nodes))
	for i, nv := range v.Nodes {
		nodes[i] = FromNodeValue(nv)
	}
	edges := make([]Edge, len(v.Edges))
	for i, ev := range v.Edges {
		edges[i] = FromEdgeValue(ev)
	}
	return New(nodes, edges, v.Metadata)
}
