package benchmark

// Entry is one algorithm's timing and ratio at a data point.
type Entry struct {
	Algorithm string
	Time      float64
	Ratio     float64
}

// Row is a data point where the baseline was measured.
type Row struct {
	Key
	BaselineTime float64
	entries      map[string]Entry
}

// Entry returns the entry for algo, if it was measured at this point.
func (r Row) Entry(algo string) (Entry, bool) {
	e, ok := r.entries[algo]
	return e, ok
}

// SeriesPoint is one (nodes, ratio) sample of a series.
type SeriesPoint struct {
	Nodes int
	Edges int
	Ratio float64
}

// Series is the ratio curve of one algorithm.
type Series struct {
	Algorithm string
	Baseline  bool
	Points    []SeriesPoint
}

// GraphSpeedup holds the speedup ratios for one graph type.
type GraphSpeedup struct {
	GraphType string
	Baseline  string
	// Columns lists the non-baseline algorithms of the first included
	// point, in encounter order.
	Columns []string
	Rows    []Row
	Series  []Series
	// Dropped counts points skipped because the baseline was not measured.
	Dropped int
}

// Empty reports whether no data point survived the baseline filter.
func (g GraphSpeedup) Empty() bool { return len(g.Rows) == 0 }

// Ratio returns baseline/t, the factor by which t beats the baseline.
func Ratio(baseline, t float64) float64 {
	return baseline / t
}

// ComputeSpeedups derives per-graph-type ratio tables and series from
// grouped results. Graph types keep their encounter order.
func ComputeSpeedups(g *Grouped, baseline string) []GraphSpeedup {
	out := make([]GraphSpeedup, 0, len(g.order))
	for _, gt := range g.GraphTypes() {
		out = append(out, computeGraph(g.Graph(gt), baseline))
	}
	return out
}

func computeGraph(gr *GraphResults, baseline string) GraphSpeedup {
	gs := GraphSpeedup{GraphType: gr.GraphType, Baseline: baseline}
	seriesIdx := make(map[string]int)

	for _, k := range gr.Keys() {
		t := gr.At(k)
		base, ok := t.Get(baseline)
		if !ok {
			gs.Dropped++
			continue
		}

		row := Row{Key: k, BaselineTime: base, entries: make(map[string]Entry, t.Len())}
		algos := t.Algorithms()
		if len(gs.Rows) == 0 {
			for _, a := range algos {
				if a != baseline {
					gs.Columns = append(gs.Columns, a)
				}
			}
			// The baseline leads the legend.
			seriesIdx[baseline] = 0
			gs.Series = append(gs.Series, Series{Algorithm: baseline, Baseline: true})
		}

		for _, a := range algos {
			v, _ := t.Get(a)
			e := Entry{Algorithm: a, Time: v, Ratio: Ratio(base, v)}
			if a == baseline {
				e.Ratio = 1.0
			}
			row.entries[a] = e

			i, ok := seriesIdx[a]
			if !ok {
				i = len(gs.Series)
				seriesIdx[a] = i
				gs.Series = append(gs.Series, Series{Algorithm: a})
			}
			gs.Series[i].Points = append(gs.Series[i].Points, SeriesPoint{Nodes: k.Nodes, Edges: k.Edges, Ratio: e.Ratio})
		}
		gs.Rows = append(gs.Rows, row)
	}
	return gs
}
