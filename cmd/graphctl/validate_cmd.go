package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowgraph/graphengine/pkg/config"
	"github.com/flowgraph/graphengine/pkg/store"
	"github.com/flowgraph/graphengine/pkg/validate"
)

func newValidateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate <graph.json>",
		Short: "Run the standard validator against a GraphValue file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
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
			diags := validate.New().CheckAll(s, cfg.ValidateOptions())
			for _, d := range diags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", d.Level, d.Code, d.Target.Type, d.Message)
			}
			if validate.HasErrors(diags) {
				return fmt.Errorf("%d validation error(s)", countErrors(diags))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a graphctl YAML config file")
	return cmd
}

func countErrors(diags []validate.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Level == validate.LevelError {
			n++
		}
	}
	return n
}
