// Command graphctl is the operator-facing CLI over the graph engine
// library (a SPEC_FULL.md supplement; the "external collaborator"
// mentioned in spec.md §1). It follows the teacher's cmd/nornicdb shape: a
// cobra root command with typed-flag subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphctl",
		Short: "Inspect and mutate graph engine GraphValue files",
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newImpactCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newDemoCmd())
	return root
}
