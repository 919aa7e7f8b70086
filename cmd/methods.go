package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/causalkit/app"
	"github.com/kilianp07/causalkit/core/causal"
	"github.com/kilianp07/causalkit/infra/blueprint"
	"github.com/kilianp07/causalkit/infra/logger"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the registered estimation methods",
	RunE:  listMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func listMethods(cmd *cobra.Command, args []string) error {
	reg, err := causal.NewRegistry(causal.Deps{Library: blueprint.Library{}, Logger: logger.NopLogger{}})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tFACTORY")
	for _, m := range app.New(reg).Methods() {
		fmt.Fprintf(w, "%s\t%s\n", m.Tag, m.TypeName)
	}
	return w.Flush()
}
