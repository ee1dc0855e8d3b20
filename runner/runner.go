// Package runner drives experiments: it generates seeded instances, times
// every configured solver on them and summarizes the outcomes.
//
// The solvers themselves never log; runner logs one entry per call through
// the logrus.FieldLogger carried by the context (WithLogger).
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tsplab/citygen"
	"github.com/katalvlaran/tsplab/citymap"
	"github.com/katalvlaran/tsplab/config"
	"github.com/katalvlaran/tsplab/tsp"
)

// ReferenceLimit is the largest instance for which a missing exact solver is
// backed by a Held–Karp reference run.
const ReferenceLimit = 12

// Record is one solver call on one instance.
type Record struct {
	Trial     int
	Seed      uint64
	Algorithm tsp.Algorithm
	Result    tsp.Result
	Elapsed   time.Duration
	TimedOut  bool

	// Optimum is the exact optimum of the instance; HasOptimum is false when
	// no exact solver ran or the instance is infeasible.
	Optimum    float64
	HasOptimum bool
}

// Gap returns (cost − optimum) / optimum, and false when undefined.
func (r Record) Gap() (float64, bool) {
	if !r.HasOptimum || !r.Result.Found() || r.Optimum <= 0 {
		return 0, false
	}

	return (r.Result.Cost - r.Optimum) / r.Optimum, true
}

// Runner executes one validated Experiment.
type Runner struct {
	cfg   config.Experiment
	algos []tsp.Algorithm
}

// New validates cfg and returns a Runner.
func New(cfg config.Experiment) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algos, err := cfg.Solvers()
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, algos: algos}, nil
}

// TrialSeed is the instance seed of trial i.
func (r *Runner) TrialSeed(i int) uint64 {
	return r.cfg.Seed + uint64(i)
}

// Instance generates the graph of trial i.
func (r *Runner) Instance(i int) (*citymap.Graph, error) {
	g, err := citygen.Generate(r.cfg.Cities, r.cfg.GeneratorOptions(r.TrialSeed(i))...)
	if err != nil {
		return nil, fmt.Errorf("runner: trial %d: %w", i, err)
	}

	return g, nil
}

// Run solves every trial and returns all records in (trial, algorithm) order.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, r.cfg.Trials*len(r.algos))
	for i := 0; i < r.cfg.Trials; i++ {
		g, err := r.Instance(i)
		if err != nil {
			return nil, err
		}
		recs, err := r.Solve(ctx, g, i)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}

	return out, nil
}

// Solve runs every configured algorithm on g and attaches the instance optimum.
func (r *Runner) Solve(ctx context.Context, g *citymap.Graph, trial int) ([]Record, error) {
	seed := r.TrialSeed(trial)
	logger := Logger(ctx).WithFields(logrus.Fields{
		"trial":  trial,
		"seed":   seed,
		"cities": g.Order(),
		"edges":  g.EdgeCount(),
	})

	recs := make([]Record, 0, len(r.algos))
	for _, algo := range r.algos {
		rec, err := r.call(ctx, logger, g, algo, trial, seed)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	opt, ok, err := r.optimum(ctx, logger, g, recs)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].Optimum, recs[i].HasOptimum = opt, ok
	}

	return recs, nil
}

func (r *Runner) call(ctx context.Context, logger logrus.FieldLogger, g *citymap.Graph, algo tsp.Algorithm, trial int, seed uint64) (Record, error) {
	callCtx := ctx
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	opts := append(r.cfg.SolverOptions(seed), tsp.WithContext(callCtx))
	started := time.Now()
	res, err := tsp.Solve(g, r.cfg.Start, algo, opts...)
	rec := Record{Trial: trial, Seed: seed, Algorithm: algo, Result: res, Elapsed: time.Since(started)}

	entry := logger.WithFields(logrus.Fields{"algo": algo.String(), "elapsed": rec.Elapsed})
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		rec.TimedOut = true
		rec.Result = tsp.Result{Algorithm: algo}
		entry.WithField("timeout", r.cfg.Timeout).Warn("solver timed out")
		return rec, nil
	default:
		return Record{}, fmt.Errorf("runner: trial %d: %w", trial, err)
	}

	if !res.Found() {
		entry.Info("no tour")
		return rec, nil
	}
	entry.WithFields(logrus.Fields{"cost": res.Cost, "expanded": res.Expanded}).Info("solved")
	logger.Debugf("%s path %v", algo, res.Tour)

	return rec, nil
}

// optimum takes the first exact record, falling back to a Held–Karp run
// on instances up to ReferenceLimit cities.
func (r *Runner) optimum(ctx context.Context, logger logrus.FieldLogger, g *citymap.Graph, recs []Record) (float64, bool, error) {
	for _, rec := range recs {
		if rec.Algorithm.Exact() && !rec.TimedOut {
			return rec.Result.Cost, rec.Result.Found(), nil
		}
	}
	if g.Order() > ReferenceLimit {
		return 0, false, nil
	}

	res, err := tsp.HeldKarp(g, r.cfg.Start, tsp.WithContext(ctx))
	if err != nil {
		return 0, false, fmt.Errorf("runner: reference optimum: %w", err)
	}
	logger.WithField("cost", res.Cost).Debug("reference optimum")

	return res.Cost, res.Found(), nil
}
