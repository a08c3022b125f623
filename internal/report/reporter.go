package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"speedup/internal/benchmark"
	"speedup/internal/telemetry"
)

// TimestampLayout stamps every file of a run.
const TimestampLayout = "20060102_150405"

// ErrBaselineNotFound is returned when the baseline algorithm has no timing
// in any graph type.
var ErrBaselineNotFound = errors.New("baseline algorithm not found")

// BaselineError lists the algorithms that were available instead.
type BaselineError struct {
	Baseline  string
	Available []string
}

func (e *BaselineError) Error() string {
	return fmt.Sprintf("%s: %q (available: %s)", ErrBaselineNotFound, e.Baseline, strings.Join(e.Available, ", "))
}

func (e *BaselineError) Unwrap() error { return ErrBaselineNotFound }

// Reporter turns grouped results into charts and a CSV summary.
type Reporter struct {
	Baseline   string
	PlotsDir   string
	ResultsDir string
	Charts     ChartWriter
	// Metrics is optional.
	Metrics *telemetry.Metrics
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result describes the files produced by a run.
type Result struct {
	Timestamp string
	CSVPath   string
	Charts    []string
	Graphs    []benchmark.GraphSpeedup
	// Skipped lists graph types where no point had a baseline timing.
	Skipped []string
}

// ChartPath returns the image path for graphType.
func ChartPath(dir, graphType, stamp string) string {
	return filepath.Join(dir, fmt.Sprintf("speedup_%s_%s.png", graphType, stamp))
}

// CSVPath returns the summary path of a run.
func CSVPath(dir, stamp string) string {
	return filepath.Join(dir, fmt.Sprintf("speedup_%s.csv", stamp))
}

// Run computes speedups for every graph type and writes one chart and one
// CSV section per graph type that has at least one baseline point.
func (r *Reporter) Run(g *benchmark.Grouped) (*Result, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	res := &Result{Timestamp: now().Format(TimestampLayout)}

	if g.Len() == 0 {
		telemetry.LogWarn("No graph benchmarks to report")
		return res, nil
	}
	if !g.HasAlgorithm(r.Baseline) {
		return nil, &BaselineError{Baseline: r.Baseline, Available: g.Algorithms()}
	}

	charts := r.Charts
	if charts == nil {
		charts = NewPNGChart(6, 4)
	}
	csvw := &CSVWriter{Path: CSVPath(r.ResultsDir, res.Timestamp)}

	res.Graphs = benchmark.ComputeSpeedups(g, r.Baseline)
	for _, gs := range res.Graphs {
		if r.Metrics != nil {
			r.Metrics.PointsIncluded.WithLabelValues(gs.GraphType).Add(float64(len(gs.Rows)))
			r.Metrics.PointsDropped.WithLabelValues(gs.GraphType).Add(float64(gs.Dropped))
		}
		if gs.Dropped > 0 {
			telemetry.LogDebug("Dropped points without baseline", "graph_type", gs.GraphType, "dropped", gs.Dropped)
		}
		if gs.Empty() {
			telemetry.LogWarn("No data point has a baseline timing", "graph_type", gs.GraphType, "baseline", r.Baseline)
			res.Skipped = append(res.Skipped, gs.GraphType)
			continue
		}

		path := ChartPath(r.PlotsDir, gs.GraphType, res.Timestamp)
		if err := charts.WriteChart(gs, path); err != nil {
			return nil, err
		}
		res.Charts = append(res.Charts, path)
		r.countFile("chart")
		telemetry.LogInfo("Wrote chart", "graph_type", gs.GraphType, "path", path, "points", len(gs.Rows))

		if err := csvw.AppendSection(gs); err != nil {
			return nil, err
		}
		res.CSVPath = csvw.Path
	}

	if res.CSVPath != "" {
		r.countFile("csv")
		telemetry.LogInfo("Wrote summary", "path", res.CSVPath, "sections", len(res.Charts))
	}
	return res, nil
}

func (r *Reporter) countFile(kind string) {
	if r.Metrics != nil {
		r.Metrics.FilesWritten.WithLabelValues(kind).Inc()
	}
}
