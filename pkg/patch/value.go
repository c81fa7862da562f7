package patch

import "github.com/flowgraph/graphengine/pkg/graph"

// Value is the plain-data, JSON-friendly form of a Patch, following the
// same ToValue/FromValue convention §6 defines for the model types — used
// by cmd/graphctl to read a patch off disk.
type Value struct {
	NodeAdd     []graph.NodeValue `json:"nodeAdd,omitempty"`
	NodeRemove  []string          `json:"nodeRemove,omitempty"`
	NodeReplace []graph.NodeValue `json:"nodeReplace,omitempty"`
	EdgeAdd     []graph.EdgeValue `json:"edgeAdd,omitempty"`
	EdgeRemove  []string          `json:"edgeRemove,omitempty"`
	EdgeReplace []graph.EdgeValue `json:"edgeReplace,omitempty"`
}

// ToValue converts a Patch to its plain-data form.
func (p Patch) ToValue() Value {
	v := Value{NodeRemove: p.NodeRemove, EdgeRemove: p.EdgeRemove}
	for _, n := range p.NodeAdd {
		v.NodeAdd = append(v.NodeAdd, n.ToValue())
	}
	for _, n := range p.NodeReplace {
		v.NodeReplace = append(v.NodeReplace, n.ToValue())
	}
	for _, e := range p.EdgeAdd {
		v.EdgeAdd = append(v.EdgeAdd, e.ToValue())
	}
	for _, e := range p.EdgeReplace {
		v.EdgeReplace = append(v.EdgeReplace, e.ToValue())
	}
	return v
}

// FromValue converts a plain-data form back to a Patch.
func FromValue(v Value) Patch {
	p := Patch{NodeRemove: v.NodeRemove, EdgeRemove: v.EdgeRemove}
	for _, nv := range v.NodeAdd {
		p.NodeAdd = append(p.NodeAdd, graph.FromNodeValue(nv))
	}
	for _, nv := range v.NodeReplace {
		p.NodeReplace = append(p.NodeReplace, graph.FromNodeValue(nv))
	}
	for _, ev := range v.EdgeAdd {
		p.EdgeAdd = append(p.EdgeAdd, graph.FromEdgeValue(ev))
	}
	for _, ev := range v.EdgeReplace {
		p.EdgeReplace = append(p.EdgeReplace, graph.FromEdgeValue(ev))
	}
	return p
}
