package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects counters for a single speedup run on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	RecordsLoaded  prometheus.Counter
	RecordsSkipped *prometheus.CounterVec
	Duplicates     prometheus.Counter
	PointsIncluded *prometheus.CounterVec
	PointsDropped  *prometheus.CounterVec
	FilesWritten   *prometheus.CounterVec
	RunDuration    prometheus.Gauge
	LastRun        prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.RecordsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "speedup_records_loaded_total",
		Help: "Benchmark records grouped into data points",
	})
	m.RecordsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "speedup_records_skipped_total",
		Help: "Benchmark records excluded from grouping",
	}, []string{"reason"})
	m.Duplicates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "speedup_duplicate_records_total",
		Help: "Records that overwrote an earlier timing at the same data point",
	})
	m.PointsIncluded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "speedup_points_included_total",
		Help: "Data points with a baseline timing",
	}, []string{"graph_type"})
	m.PointsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "speedup_points_dropped_total",
		Help: "Data points dropped because the baseline was not measured",
	}, []string{"graph_type"})
	m.FilesWritten = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "speedup_files_written_total",
		Help: "Output files written",
	}, []string{"kind"})
	m.RunDuration = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "speedup_run_duration_seconds",
		Help: "Wall time of the last run",
	})
	m.LastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "speedup_last_run_timestamp_seconds",
		Help: "Unix time the last run finished",
	})

	m.Registry.MustRegister(
		m.RecordsLoaded,
		m.RecordsSkipped,
		m.Duplicates,
		m.PointsIncluded,
		m.PointsDropped,
		m.FilesWritten,
		m.RunDuration,
		m.LastRun,
	)
	return m
}

// ObserveRun records how long a run took.
func (m *Metrics) ObserveRun(start, end time.Time) {
	m.RunDuration.Set(end.Sub(start).Seconds())
	m.LastRun.Set(float64(end.Unix()))
}

// WriteTextfile writes the registry in the text exposition format, for
// node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
