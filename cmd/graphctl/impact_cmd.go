package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowgraph/graphengine/pkg/config"
	"github.com/flowgraph/graphengine/pkg/impact"
	"github.com/flowgraph/graphengine/pkg/store"
)

func newImpactCmd() *cobra.Command {
	var patchPath, configPath string
	var tagged string
	cmd := &cobra.Command{
		Use:   "impact <graph.json>",
		Short: "Compute the affected sub-graph for a patch against a pre-change GraphValue file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if patchPath == "" {
				return fmt.Errorf("--patch is required")
			}
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}
			p, err := readPatch(patchPath)
			if err != nil {
				return err
			}
			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			s := store.FromGraph(g)
			var analyzer *impact.Analyzer
			if tagged != "" {
				analyzer = impact.New(impact.NewTagged(tagged))
			} else {
				analyzer = impact.NewDefault()
			}
			res := analyzer.Analyze(s, p, cfg.ImpactOptions())

			out, err := json.MarshalIndent(res.Graph.ToValue(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&patchPath, "patch", "", "path to a patch.Value JSON file describing the pending change")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a graphctl YAML config file")
	cmd.Flags().StringVar(&tagged, "tagged", "", "restrict traversal to edges whose metadata[key] is true")
	return cmd
}
