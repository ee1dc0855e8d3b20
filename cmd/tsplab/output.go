package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tsplab/citymap"
	"github.com/katalvlaran/tsplab/runner"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// writeCities prints one line per city.
func writeCities(w io.Writer, g *citymap.Graph) error {
	for _, c := range g.Cities() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}

	return nil
}

// writeMatrix prints the cost matrix with "City i" headers; absent edges
// are shown as "-".
func writeMatrix(w io.Writer, g *citymap.Graph) error {
	tw := newTable(w)
	n := g.Order()

	var b strings.Builder
	b.WriteString("\t")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "City %d\t", j)
	}
	fmt.Fprintln(tw, b.String())

	for i := 0; i < n; i++ {
		b.Reset()
		fmt.Fprintf(&b, "City %d\t", i)
		for j := 0; j < n; j++ {
			if !g.HasEdge(i, j) {
				b.WriteString("-\t")
				continue
			}
			fmt.Fprintf(&b, "%.2f\t", g.Cost(i, j))
		}
		fmt.Fprintln(tw, b.String())
	}

	return tw.Flush()
}

// writeRecords prints one row per solver call of a single instance.
func writeRecords(w io.Writer, recs []runner.Record) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "algorithm\tcost\tgap\texpanded\telapsed\tpath\t")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.Algorithm,
			formatCost(rec),
			formatGap(rec),
			humanize.Comma(int64(rec.Result.Expanded)),
			formatDuration(rec.Elapsed),
			formatPath(rec),
		)
	}

	return tw.Flush()
}

// writeSummaries prints the aggregated bench table.
func writeSummaries(w io.Writer, title string, sums []runner.Summary) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
			return err
		}
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "algorithm\truns\tfound\ttimeouts\tmean cost\tstd\tmin\tmax\tmean gap\tmean time\tp95 time\t")
	for _, s := range sums {
		gap := "-"
		if s.Gaps > 0 {
			gap = percent(s.MeanGap)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.0f%%\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\t\n",
			s.Algorithm,
			s.Runs,
			100*s.SuccessRate(),
			s.TimedOut,
			s.MeanCost, s.StdCost, s.MinCost, s.MaxCost,
			gap,
			formatDuration(s.MeanTime),
			formatDuration(s.P95Time),
		)
	}

	return tw.Flush()
}

func formatCost(rec runner.Record) string {
	switch {
	case rec.TimedOut:
		return "timeout"
	case !rec.Result.Found():
		return "none"
	}

	return humanize.CommafWithDigits(rec.Result.Cost, 2)
}

func formatGap(rec runner.Record) string {
	gap, ok := rec.Gap()
	if !ok {
		return "-"
	}

	return percent(gap)
}

// percent renders a relative gap; rounding noise between tours of equal
// cost summed in different orders prints as 0.
func percent(gap float64) string {
	if math.Abs(gap) < 1e-9 {
		gap = 0
	}

	return fmt.Sprintf("%.2f%%", 100*gap)
}

func formatPath(rec runner.Record) string {
	if !rec.Result.Found() {
		return "-"
	}
	parts := make([]string, len(rec.Result.Tour))
	for i, v := range rec.Result.Tour {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " → ")
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
