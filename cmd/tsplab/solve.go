package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsplab/runner"
)

func newSolveCommand(opts *globalOptions) *cobra.Command {
	var (
		trial   int
		showMap bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run every configured algorithm on one seeded instance.",
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
			if showMap {
				if err = writeMatrix(out, g); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			recs, err := r.Solve(cmd.Context(), g, trial)
			if err != nil {
				return err
			}

			return writeRecords(out, recs)
		},
	}
	cmd.Flags().IntVar(&trial, "trial", 0, "trial index (instance seed = seed + trial)")
	cmd.Flags().BoolVar(&showMap, "matrix", false, "print the cost matrix first")

	return cmd
}
