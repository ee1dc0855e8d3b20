package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsplab/runner"
)

func newGenerateCommand(opts *globalOptions) *cobra.Command {
	var trial int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the cities and cost matrix of one seeded instance.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := runner.New(opts.cfg)
			if err != nil {
				return err
			}
			g, err := r.Instance(trial)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seed %d, %d cities, %d edges (density %.2f)\n",
				r.TrialSeed(trial), g.Order(), g.EdgeCount(), g.Density())
			if err = writeCities(out, g); err != nil {
				return err
			}
			fmt.Fprintln(out)

			return writeMatrix(out, g)
		},
	}
	cmd.Flags().IntVar(&trial, "trial", 0, "trial index (instance seed = seed + trial)")

	return cmd
}
