package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsplab/config"
	"github.com/katalvlaran/tsplab/runner"
)

func newBenchCommand(opts *globalOptions) *cobra.Command {
	var scenarios bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve every trial and print per-algorithm statistics.",
		Long: "Solve every trial and print per-algorithm statistics.\n\n" +
			"With --scenarios the run is repeated on the four lab graph families\n" +
			"(full and 80% connections, symmetric and asymmetric).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !scenarios {
				return bench(cmd, opts.cfg, "")
			}
			for _, s := range config.LabScenarios() {
				if err := bench(cmd, opts.cfg.WithScenario(s), s.Name); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&scenarios, "scenarios", false, "run the four lab scenarios")

	return cmd
}

func bench(cmd *cobra.Command, cfg config.Experiment, title string) error {
	r, err := runner.New(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if title != "" {
		ctx = runner.WithLogger(ctx, runner.Logger(ctx).WithField("scenario", title))
	}
	recs, err := r.Run(ctx)
	if err != nil {
		return err
	}
	sums, err := runner.Summarize(recs)
	if err != nil {
		return err
	}

	return writeSummaries(cmd.OutOrStdout(), title, sums)
}
