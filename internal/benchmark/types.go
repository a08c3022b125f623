package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TimeField selects which timing column of a record is used.
type TimeField string

const (
	RealTime TimeField = "real_time"
	CPUTime  TimeField = "cpu_time"
)

// TimeFields lists the accepted timing columns.
var TimeFields = []TimeField{RealTime, CPUTime}

// ParseTimeField converts a flag or config value into a TimeField.
func ParseTimeField(s string) (TimeField, error) {
	for _, f := range TimeFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid time field %q: must be one of %s", s, TimeFieldChoices("|"))
}

// TimeFieldChoices joins the accepted timing columns with sep.
func TimeFieldChoices(sep string) string {
	names := make([]string, len(TimeFields))
	for i, f := range TimeFields {
		names[i] = string(f)
	}
	return strings.Join(names, sep)
}

func (f TimeField) String() string { return string(f) }

// Count is a non-negative integer counter that the harness may emit
// either as a JSON number (often in float notation) or as a string.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: count %q is not an integer", ErrInvalidRecord, s)
		}
		if n < 0 {
			return fmt.Errorf("%w: count %q out of range", ErrInvalidRecord, s)
		}
		*c = Count(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: count %s is not a number", ErrInvalidRecord, data)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: count %s is not an integer", ErrInvalidRecord, data)
	}
	if f < 0 || f >= math.MaxInt {
		return fmt.Errorf("%w: count %s out of range", ErrInvalidRecord, data)
	}
	*c = Count(f)
	return nil
}

// Record is one entry of the harness output.
type Record struct {
	Name          string   `json:"name"`
	RunType       string   `json:"run_type,omitempty"`
	NodesCount    *Count   `json:"nodes_count,omitempty"`
	EdgesCount    *Count   `json:"edges_count,omitempty"`
	RealTime      *float64 `json:"real_time,omitempty"`
	CPUTime       *float64 `json:"cpu_time,omitempty"`
	TimeUnit      string   `json:"time_unit,omitempty"`
	ErrorOccurred bool     `json:"error_occurred,omitempty"`
	ErrorMessage  string   `json:"error_message,omitempty"`
}

// Time returns the timing selected by field, or false when the record
// does not carry it.
func (r Record) Time(field TimeField) (float64, bool) {
	var v *float64
	switch field {
	case CPUTime:
		v = r.CPUTime
	default:
		v = r.RealTime
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// IsAggregate reports whether the record is a mean/median/stddev row
// produced from repetitions.
func (r Record) IsAggregate() bool {
	return r.RunType == "aggregate"
}

// Document is the top-level harness output.
type Document struct {
	Context    map[string]any `json:"context,omitempty"`
	Benchmarks []Record       `json:"benchmarks"`
}

// Key identifies a data point within a graph type.
type Key struct {
	Nodes int
	Edges int
}

// Less orders keys by node count, then edge count.
func (k Key) Less(o Key) bool {
	if k.Nodes != o.Nodes {
		return k.Nodes < o.Nodes
	}
	return k.Edges < o.Edges
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.Nodes, k.Edges)
}
