package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/citygen"
	"github.com/katalvlaran/tsplab/config"
	"github.com/katalvlaran/tsplab/tsp"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	algos, err := cfg.Solvers()
	require.NoError(t, err)
	assert.Equal(t, []tsp.Algorithm{tsp.AlgoBFS, tsp.AlgoDFS, tsp.AlgoNN, tsp.AlgoGreedy, tsp.AlgoAStar, tsp.AlgoACO}, algos)
	assert.Equal(t, 100, cfg.Colony.Ants)
	assert.Equal(t, 1000, cfg.Colony.Iterations)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cities: 6
density: 0.8
asymmetric: true
algorithms: [astar, heldkarp]
colony:
  ants: 20
timeout: 2s
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Cities)
	assert.Equal(t, 0.8, cfg.Density)
	assert.True(t, cfg.Asymmetric)
	assert.Equal(t, []string{"astar", "heldkarp"}, cfg.Algorithms)
	assert.Equal(t, 20, cfg.Colony.Ants)
	assert.Equal(t, 1000, cfg.Colony.Iterations, "unset nested key keeps its default")
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestDecode_EmptyAndUnknown(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Decode(strings.NewReader("citiez: 4\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOverlay(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Overlay(&cfg, config.Experiment{
		Cities:     5,
		Asymmetric: true,
		Algorithms: []string{"nn"},
		Colony:     tsp.ColonyParams{Ants: 7},
	}))

	assert.Equal(t, 5, cfg.Cities)
	assert.True(t, cfg.Asymmetric)
	assert.Equal(t, []string{"nn"}, cfg.Algorithms)
	assert.Equal(t, 7, cfg.Colony.Ants)
	assert.Equal(t, 1000, cfg.Colony.Iterations, "zero fields do not override")
	assert.Equal(t, 1.0, cfg.Density)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate_Errors(t *testing.T) {
	cases := map[string]func(e *config.Experiment){
		"cities":      func(e *config.Experiment) { e.Cities = 0 },
		"density":     func(e *config.Experiment) { e.Density = 1.2 },
		"start":       func(e *config.Experiment) { e.Start = 8 },
		"trials":      func(e *config.Experiment) { e.Trials = 0 },
		"workers":     func(e *config.Experiment) { e.Workers = 0 },
		"timeout":     func(e *config.Experiment) { e.Timeout = -time.Second },
		"log level":   func(e *config.Experiment) { e.Log.Level = "loud" },
		"no algos":    func(e *config.Experiment) { e.Algorithms = nil },
		"bad algo":    func(e *config.Experiment) { e.Algorithms = []string{"bfs", "tabu"} },
		"evaporation": func(e *config.Experiment) { e.Colony.Evaporation = 2 },
		"ants":        func(e *config.Experiment) { e.Colony.Ants = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	colony := config.Default()
	colony.Colony.Evaporation = 2
	assert.ErrorIs(t, colony.Validate(), tsp.ErrBadColonyParams)

	noACO := config.Default()
	noACO.Algorithms = []string{"bfs"}
	noACO.Colony = tsp.ColonyParams{}
	assert.NoError(t, noACO.Validate(), "colony is only checked when aco runs")
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Cities = 5
	cfg.Density = 0
	cfg.Asymmetric = true

	g, err := citygen.Generate(cfg.Cities, cfg.GeneratorOptions(3)...)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	cfg.Colony = tsp.ColonyParams{Ants: 2, Iterations: 2, Alpha: 1, Beta: 1, Evaporation: 0.5, Q: 1}
	res, err := tsp.Solve(g, 0, tsp.AlgoACO, cfg.SolverOptions(3)...)
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestLabScenarios(t *testing.T) {
	sc := config.LabScenarios()
	require.Len(t, sc, 4)

	base := config.Default()
	for _, s := range sc {
		e := base.WithScenario(s)
		assert.Equal(t, s.Density, e.Density)
		assert.Equal(t, s.Asymmetric, e.Asymmetric)
		require.NoError(t, e.Validate())
	}
	assert.False(t, base.Asymmetric, "WithScenario works on a copy")
}
