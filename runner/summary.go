package runner

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/tsplab/tsp"
)

// Summary aggregates the records of one algorithm.
//   - Cost statistics cover successful runs only (zero when Found == 0).
//   - MeanGap covers successful runs on instances with a known optimum.
type Summary struct {
	Algorithm tsp.Algorithm
	Runs      int
	Found     int
	TimedOut  int

	MeanCost float64
	StdCost  float64
	MinCost  float64
	MaxCost  float64

	MeanTime time.Duration
	P95Time  time.Duration

	MeanGap float64
	Gaps    int
}

// SuccessRate is Found / Runs.
func (s Summary) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}

	return float64(s.Found) / float64(s.Runs)
}

// Summarize groups records by algorithm, in order of first appearance.
func Summarize(records []Record) ([]Summary, error) {
	var order []tsp.Algorithm
	groups := make(map[tsp.Algorithm][]Record)
	for _, rec := range records {
		if _, ok := groups[rec.Algorithm]; !ok {
			order = append(order, rec.Algorithm)
		}
		groups[rec.Algorithm] = append(groups[rec.Algorithm], rec)
	}

	out := make([]Summary, 0, len(order))
	for _, algo := range order {
		s, err := summarize(algo, groups[algo])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func summarize(algo tsp.Algorithm, recs []Record) (Summary, error) {
	s := Summary{Algorithm: algo, Runs: len(recs)}

	var costs, gaps []float64
	times := make([]float64, 0, len(recs))
	for _, rec := range recs {
		times = append(times, float64(rec.Elapsed))
		if rec.TimedOut {
			s.TimedOut++
		}
		if !rec.Result.Found() {
			continue
		}
		s.Found++
		costs = append(costs, rec.Result.Cost)
		if gap, ok := rec.Gap(); ok {
			gaps = append(gaps, gap)
		}
	}

	var err error
	if len(times) > 0 {
		var mean, p95 float64
		if mean, err = stats.Mean(times); err != nil {
			return s, err
		}
		if p95, err = stats.Percentile(times, 95); err != nil {
			return s, err
		}
		s.MeanTime, s.P95Time = time.Duration(mean), time.Duration(p95)
	}
	if len(costs) > 0 {
		if s.MeanCost, err = stats.Mean(costs); err != nil {
			return s, err
		}
		if s.StdCost, err = stats.StandardDeviation(costs); err != nil {
			return s, err
		}
		if s.MinCost, err = stats.Min(costs); err != nil {
			return s, err
		}
		if s.MaxCost, err = stats.Max(costs); err != nil {
			return s, err
		}
	}
	if len(gaps) > 0 {
		if s.MeanGap, err = stats.Mean(gaps); err != nil {
			return s, err
		}
		s.Gaps = len(gaps)
	}

	return s, nil
}
