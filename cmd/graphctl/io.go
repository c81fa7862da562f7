package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/patch"
)

func readGraph(path string) (graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("read graph %s: %w", path, err)
	}
	var gv graph.GraphValue
	if err := json.Unmarshal(data, &gv); err != nil {
		return graph.Graph{}, fmt.Errorf("parse graph %s: %w", path, err)
	}
	return graph.FromValue(gv), nil
}

func writeGraph(path string, g graph.Graph) error {
	data, err := json.MarshalIndent(g.ToValue(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph %s: %w", path, err)
	}
	return nil
}

func readPatch(path string) (patch.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return patch.Patch{}, fmt.Errorf("read patch %s: %w", path, err)
	}
	var pv patch.Value
	if err := json.Unmarshal(data, &pv); err != nil {
		return patch.Patch{}, fmt.Errorf("parse patch %s: %w", path, err)
	}
	return patch.FromValue(pv), nil
}
