package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days and where their input is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			for _, day := range deps.Runner.Days() {
				solver, _ := deps.Runner.Solver(day)
				fmt.Fprintf(cmd.OutOrStdout(), "Day %02d  %-24s %s\n", day, solver.Name(), deps.Loader.Path(day))
			}
			return nil
		},
	}
}
