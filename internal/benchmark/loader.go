package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"speedup/internal/telemetry"

	"github.com/go-playground/validator/v10"
)

// DuplicatePolicy decides what happens when an algorithm is measured twice
// at the same data point of the same graph type.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the last value seen.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateReject fails the load with ErrDuplicate.
	DuplicateReject
)

// LoadOptions configures a load.
type LoadOptions struct {
	TimeField         TimeField
	Duplicates        DuplicatePolicy
	IncludeAggregates bool
	// IncludeErrored keeps runs flagged with error_occurred. They still
	// need counters and a timing to be grouped.
	IncludeErrored bool
}

// Skip reasons reported in LoadStats.Skipped.
const (
	SkipNoNodesCount = "no_nodes_count"
	SkipAggregate    = "aggregate"
	SkipErrored      = "error_occurred"
)

// LoadStats summarizes what the loader did with the document.
type LoadStats struct {
	Records    int
	Loaded     int
	Skipped    map[string]int
	Duplicates int
	TimeUnit   string
}

// SkippedTotal returns the number of records excluded for any reason.
func (s LoadStats) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// measurement is the validated form of one graph record.
type measurement struct {
	GraphType string  `validate:"required"`
	Algorithm string  `validate:"required"`
	Nodes     int     `validate:"gte=0"`
	Edges     int     `validate:"gte=0"`
	Time      float64 `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads the harness output at path and groups it.
func LoadFile(path string, opts LoadOptions) (*Grouped, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open benchmark results: %w", err)
	}
	defer f.Close()

	grouped, stats, err := Load(f, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return grouped, stats, nil
}

// Load decodes a harness document from r and groups its graph records by
// graph type, data point and algorithm.
func Load(r io.Reader, opts LoadOptions) (*Grouped, LoadStats, error) {
	stats := LoadStats{Skipped: make(map[string]int)}
	if opts.TimeField == "" {
		opts.TimeField = RealTime
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read benchmark results: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, stats, fmt.Errorf("failed to decode benchmark results: %w", err)
	}
	if doc.Benchmarks == nil {
		return nil, stats, ErrNoBenchmarks
	}
	if len(doc.Context) > 0 {
		telemetry.LogDebug("Benchmark context", "host", doc.Context["host_name"], "date", doc.Context["date"], "executable", doc.Context["executable"])
	}

	grouped := NewGrouped()
	for i, rec := range doc.Benchmarks {
		stats.Records++

		if rec.NodesCount == nil {
			stats.Skipped[SkipNoNodesCount]++
			continue
		}
		if rec.IsAggregate() && !opts.IncludeAggregates {
			stats.Skipped[SkipAggregate]++
			continue
		}
		if rec.ErrorOccurred && !opts.IncludeErrored {
			telemetry.LogWarn("Skipping failed benchmark", "name", rec.Name, "message", rec.ErrorMessage)
			stats.Skipped[SkipErrored]++
			continue
		}

		m, err := toMeasurement(rec, opts.TimeField)
		if err != nil {
			return nil, stats, &RecordError{Index: i, Name: rec.Name, Err: err}
		}

		k := Key{Nodes: m.Nodes, Edges: m.Edges}
		if opts.Duplicates == DuplicateReject {
			if _, exists := grouped.Lookup(m.GraphType, k, m.Algorithm); exists {
				return nil, stats, &RecordError{
					Index: i,
					Name:  rec.Name,
					Err:   fmt.Errorf("%w: %s already measured at %s for %s", ErrDuplicate, m.Algorithm, k, m.GraphType),
				}
			}
		}
		if grouped.Add(m.GraphType, k, m.Algorithm, m.Time) {
			stats.Duplicates++
			telemetry.LogDebug("Overwriting duplicate benchmark entry", "name", rec.Name, "point", k.String())
		}
		stats.Loaded++
		if stats.TimeUnit == "" {
			stats.TimeUnit = rec.TimeUnit
		}
	}

	return grouped, stats, nil
}

func toMeasurement(rec Record, field TimeField) (measurement, error) {
	name, err := ParseName(rec.Name)
	if err != nil {
		return measurement{}, err
	}
	if rec.EdgesCount == nil {
		return measurement{}, fmt.Errorf("%w: edges_count", ErrMissingField)
	}
	t, ok := rec.Time(field)
	if !ok {
		return measurement{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	m := measurement{
		GraphType: name.GraphType,
		Algorithm: name.Algorithm,
		Nodes:     int(*rec.NodesCount),
		Edges:     int(*rec.EdgesCount),
		Time:      t,
	}
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return measurement{}, fmt.Errorf("%w: %s failed %q (got %v)", ErrInvalidRecord, fe.Field(), fe.Tag(), fe.Value())
		}
		return measurement{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return m, nil
}
