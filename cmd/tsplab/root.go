package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tsplab/config"
	"github.com/katalvlaran/tsplab/runner"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	json       bool
	seed       uint64
	cities     int
	density    float64
	asymmetric bool
	start      int
	algos      []string
	trials     int
	workers    int
	timeout    time.Duration

	cfg config.Experiment
}

// Execute builds the command tree and runs it with args.
func Execute(ctx context.Context, version string, args []string) error {
	root := newRootCommand(version)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "tsplab",
		Short:         "Compare exhaustive, heuristic, A* and ant-colony TSP solvers on random 3-D city graphs.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to experiment YAML file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&opts.json, "json", false, "log as JSON")
	pf.Uint64Var(&opts.seed, "seed", 0, "instance and colony seed")
	pf.IntVarP(&opts.cities, "cities", "n", 0, "number of cities")
	pf.Float64Var(&opts.density, "density", 0, "edge probability in [0,1]")
	pf.BoolVar(&opts.asymmetric, "asymmetric", false, "elevation-scaled one-way costs")
	pf.IntVar(&opts.start, "start", 0, "start city")
	pf.StringSliceVar(&opts.algos, "algo", nil, "algorithms to run (bfs, dfs, nn, greedy, astar, aco, heldkarp)")
	pf.IntVar(&opts.trials, "trials", 0, "number of seeded instances")
	pf.IntVar(&opts.workers, "workers", 0, "parallel ants per iteration")
	pf.DurationVar(&opts.timeout, "timeout", 0, "per-solver time limit")

	root.AddCommand(
		newGenerateCommand(opts),
		newSolveCommand(opts),
		newBenchCommand(opts),
	)

	return root
}

// setup layers defaults, the config file and changed flags, validates the
// result and attaches a configured logger to the command context.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := config.Overlay(&cfg, o.overrides()); err != nil {
		return err
	}
	// mergo skips zero values; an explicitly set flag wins even when it is
	// zero (seed 0, timeout 0 = none) or invalid (workers 0, trials 0)
	flags := cmd.Flags()
	if flags.Changed("density") {
		cfg.Density = o.density
	}
	if flags.Changed("start") {
		cfg.Start = o.start
	}
	if flags.Changed("asymmetric") {
		cfg.Asymmetric = o.asymmetric
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("cities") {
		cfg.Cities = o.cities
	}
	if flags.Changed("trials") {
		cfg.Trials = o.trials
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if o.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if o.json {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"cities":  cfg.Cities,
		"density": cfg.Density,
		"seed":    cfg.Seed,
		"flags":   commandLine(cmd.Flags()),
	}).Debug("experiment loaded")
	cmd.SetContext(runner.WithLogger(cmd.Context(), logger))

	return nil
}

func (o *globalOptions) overrides() config.Experiment {
	return config.Experiment{
		Cities:     o.cities,
		Seed:       o.seed,
		Algorithms: o.algos,
		Trials:     o.trials,
		Workers:    o.workers,
		Timeout:    o.timeout,
	}
}

func newLogger(w io.Writer, lc config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch {
	case lc.JSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case isTerminal(w):
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	}

	return logger, nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// commandLine reports the flags that were set explicitly, for debug logs.
func commandLine(flags *pflag.FlagSet) []string {
	var out []string
	flags.Visit(func(f *pflag.Flag) {
		out = append(out, "--"+f.Name+"="+f.Value.String())
	})

	return out
}
