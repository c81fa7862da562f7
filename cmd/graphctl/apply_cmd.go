package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowgraph/graphengine/pkg/config"
	"github.com/flowgraph/graphengine/pkg/workspace"
)

func newApplyCmd() *cobra.Command {
	var patchPath, outPath, configPath string
	cmd := &cobra.Command{
		Use:   "apply <graph.json>",
		Short: "Apply a patch to a GraphValue file through a Workspace, validating before commit",
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

			ws := workspace.New(g)
			res, err := ws.ApplyPatch(p, cfg.ValidateOptions())
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			for _, d := range res.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\t%s\n", d.Level, d.Code, d.Message)
			}
			return writeGraph(outPath, res.Graph)
		},
	}
	cmd.Flags().StringVar(&patchPath, "patch", "", "path to a patch.Value JSON file")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for the resulting GraphValue (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a graphctl YAML config file")
	return cmd
}
