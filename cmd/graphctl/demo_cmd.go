package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flowgraph/graphengine/pkg/graph"
)

// newDemoCmd builds a tiny two-node, one-edge GraphValue for trying out the
// other subcommands. Ids default to freshly minted UUIDs when the operator
// doesn't supply their own — the engine itself never generates ids (§9:
// "ambient... generate one... is incidental and should not be part of the
// contract"); only this outer convenience layer does.
func newDemoCmd() *cobra.Command {
	var sourceID, targetID, outPath string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit a small two-node demo GraphValue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sourceID == "" {
				sourceID = uuid.New().String()
			}
			if targetID == "" {
				targetID = uuid.New().String()
			}

			source := graph.NewNode(sourceID, "source", "", nil,
				[]graph.Endpoint{graph.NewOutput(sourceID+".out", "out", graph.Contract{Flow: "string"}, nil)}, nil)
			target := graph.NewNode(targetID, "sink", "",
				[]graph.Endpoint{graph.NewInput(targetID+".in", "in", graph.Contract{Flow: "string"}, nil)}, nil, nil)
			edge := graph.NewEdge(uuid.New().String(),
				graph.Reference{NodeID: sourceID, EndpointID: sourceID + ".out"},
				graph.Reference{NodeID: targetID, EndpointID: targetID + ".in"}, nil)

			g := graph.New([]graph.Node{source, target}, []graph.Edge{edge}, nil)
			return writeGraph(outPath, g)
		},
	}
	cmd.Flags().StringVar(&sourceID, "source-id", "", "id for the source node (default: a fresh uuid)")
	cmd.Flags().StringVar(&targetID, "target-id", "", "id for the target node (default: a fresh uuid)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for the demo GraphValue (default: stdout)")
	return cmd
}
