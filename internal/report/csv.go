package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"speedup/internal/benchmark"
)

// CSVWriter appends per-graph-type sections to one CSV file. The file is
// opened and closed around every section.
type CSVWriter struct {
	Path string
}

// AppendSection writes the section of gs at the end of the file,
// creating the file and its directory if needed.
func (w *CSVWriter) AppendSection(gs benchmark.GraphSpeedup) error {
	if err := os.MkdirAll(filepath.Dir(w.Path), 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}
	f, err := os.OpenFile(w.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.Path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(SectionRecords(gs)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write section %s: %w", gs.GraphType, err)
	}
	return f.Close()
}

// SectionRecords lays out one graph type: a graph_type line, the column
// header, then one row per data point.
func SectionRecords(gs benchmark.GraphSpeedup) [][]string {
	records := [][]string{
		{"graph_type", gs.GraphType},
		Header(gs),
	}
	for _, row := range gs.Rows {
		records = append(records, FormatRow(gs, row))
	}
	return records
}

// Header returns the column row: nodes, edges, the baseline time, then one
// "<algo>_time (ratio)" column per non-baseline algorithm.
func Header(gs benchmark.GraphSpeedup) []string {
	h := []string{"nodes", "edges", gs.Baseline + "_time"}
	for _, a := range gs.Columns {
		h = append(h, a+"_time (ratio)")
	}
	return h
}

// FormatRow renders a data point. Algorithms not measured at this point
// leave an empty cell.
func FormatRow(gs benchmark.GraphSpeedup, row benchmark.Row) []string {
	r := []string{
		strconv.Itoa(row.Nodes),
		strconv.Itoa(row.Edges),
		formatFloat(row.BaselineTime),
	}
	for _, a := range gs.Columns {
		e, ok := row.Entry(a)
		if !ok {
			r = append(r, "")
			continue
		}
		r = append(r, fmt.Sprintf("%s (%s)", formatFloat(e.Time), formatFloat(e.Ratio)))
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
