// Package config loads and validates tsplab experiment settings.
//
// Layering (lowest to highest precedence):
//  1. Default() values.
//  2. A YAML file (Load); absent keys keep their defaults, unknown keys fail.
//  3. Command-line overrides (Overlay); zero-valued overrides are ignored.
//
// Validate runs after layering; nothing here is clamped silently.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsplab/citygen"
	"github.com/katalvlaran/tsplab/tsp"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid experiment")

// Experiment describes one generate/solve/bench run.
type Experiment struct {
	Cities     int              `yaml:"cities"`
	Density    float64          `yaml:"density"`
	Asymmetric bool             `yaml:"asymmetric"`
	Start      int              `yaml:"start"`
	Seed       uint64           `yaml:"seed"`
	Trials     int              `yaml:"trials"`
	Algorithms []string         `yaml:"algorithms"`
	Colony     tsp.ColonyParams `yaml:"colony"`
	Workers    int              `yaml:"workers"`
	Timeout    time.Duration    `yaml:"timeout"` // per solver call, 0 = none
	Log        LogConfig        `yaml:"log"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the lab defaults: 8 fully connected symmetric cities,
// start 0, every heuristic and search algorithm, and the lab's colony
// (100 ants, 1000 iterations, α=1, β=1, ρ=0.1, Q=1).
func Default() Experiment {
	return Experiment{
		Cities:     8,
		Density:    1,
		Seed:       1,
		Trials:     1,
		Algorithms: []string{"bfs", "dfs", "nn", "greedy", "astar", "aco"},
		Colony: tsp.ColonyParams{
			Ants:        100,
			Iterations:  1000,
			Alpha:       1,
			Beta:        1,
			Evaporation: 0.1,
			Q:           1,
		},
		Workers: 1,
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default(). It does not validate.
func Load(path string) (Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r on top of Default(). Empty input yields Default().
func Decode(r io.Reader) (Experiment, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Experiment{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Overlay merges non-zero fields of src into dst (mergo.WithOverride).
// Non-empty slices replace rather than append.
func Overlay(dst *Experiment, src Experiment) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("config: overlay: %w", err)
	}

	return nil
}

// Validate checks ranges and names; it never adjusts values.
func (e Experiment) Validate() error {
	switch {
	case e.Cities < 1:
		return fmt.Errorf("%w: cities=%d < 1", ErrInvalidConfig, e.Cities)
	case math.IsNaN(e.Density) || e.Density < 0 || e.Density > 1:
		return fmt.Errorf("%w: density=%g not in [0,1]", ErrInvalidConfig, e.Density)
	case e.Start < 0 || e.Start >= e.Cities:
		return fmt.Errorf("%w: start=%d not in [0,%d)", ErrInvalidConfig, e.Start, e.Cities)
	case e.Trials < 1:
		return fmt.Errorf("%w: trials=%d < 1", ErrInvalidConfig, e.Trials)
	case e.Workers < 1:
		return fmt.Errorf("%w: workers=%d < 1", ErrInvalidConfig, e.Workers)
	case e.Timeout < 0:
		return fmt.Errorf("%w: timeout=%s < 0", ErrInvalidConfig, e.Timeout)
	}

	if _, err := logrus.ParseLevel(e.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	algos, err := e.Solvers()
	if err != nil {
		return err
	}
	for _, a := range algos {
		if a != tsp.AlgoACO {
			continue
		}
		if err = tsp.ValidateColony(e.Colony); err != nil {
			return fmt.Errorf("%w: colony: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Solvers parses Algorithms in order.
func (e Experiment) Solvers() ([]tsp.Algorithm, error) {
	if len(e.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: no algorithms", ErrInvalidConfig)
	}
	out := make([]tsp.Algorithm, 0, len(e.Algorithms))
	for _, name := range e.Algorithms {
		a, err := tsp.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// GeneratorOptions returns the citygen options for one instance seed.
func (e Experiment) GeneratorOptions(seed uint64) []citygen.Option {
	return []citygen.Option{
		citygen.WithSeed(seed),
		citygen.WithDensity(e.Density),
		citygen.WithSymmetric(!e.Asymmetric),
	}
}

// SolverOptions returns the tsp options shared by every solver call.
func (e Experiment) SolverOptions(seed uint64) []tsp.Option {
	return []tsp.Option{
		tsp.WithSeed(seed),
		tsp.WithWorkers(e.Workers),
		tsp.WithColony(e.Colony),
	}
}
