package benchmark

import "sort"

// Timings maps algorithm names to timings at one data point, remembering
// the order in which algorithms were first seen.
type Timings struct {
	order  []string
	values map[string]float64
}

func newTimings() *Timings {
	return &Timings{values: make(map[string]float64)}
}

// Set stores the timing for algo and reports whether an earlier value was
// replaced.
func (t *Timings) Set(algo string, v float64) bool {
	_, exists := t.values[algo]
	if !exists {
		t.order = append(t.order, algo)
	}
	t.values[algo] = v
	return exists
}

// Get returns the timing recorded for algo.
func (t *Timings) Get(algo string) (float64, bool) {
	v, ok := t.values[algo]
	return v, ok
}

// Algorithms returns the algorithm names in encounter order.
func (t *Timings) Algorithms() []string {
	return append([]string(nil), t.order...)
}

func (t *Timings) Len() int { return len(t.order) }

// GraphResults holds every data point recorded for one graph type.
type GraphResults struct {
	GraphType string
	points    map[Key]*Timings
}

// Keys returns the data point keys in ascending (nodes, edges) order.
func (g *GraphResults) Keys() []Key {
	keys := make([]Key, 0, len(g.points))
	for k := range g.points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// At returns the timings at k, or nil if no record was loaded for it.
func (g *GraphResults) At(k Key) *Timings {
	return g.points[k]
}

func (g *GraphResults) Len() int { return len(g.points) }

// Grouped is the loader output: graph type -> data point -> algorithm ->
// timing. Graph types keep their encounter order.
type Grouped struct {
	order  []string
	graphs map[string]*GraphResults
}

func NewGrouped() *Grouped {
	return &Grouped{graphs: make(map[string]*GraphResults)}
}

// Add records a timing and reports whether it replaced an existing one.
func (g *Grouped) Add(graphType string, k Key, algo string, v float64) bool {
	gr, ok := g.graphs[graphType]
	if !ok {
		gr = &GraphResults{GraphType: graphType, points: make(map[Key]*Timings)}
		g.graphs[graphType] = gr
		g.order = append(g.order, graphType)
	}
	t, ok := gr.points[k]
	if !ok {
		t = newTimings()
		gr.points[k] = t
	}
	return t.Set(algo, v)
}

// Lookup returns the timing for one algorithm at one data point.
func (g *Grouped) Lookup(graphType string, k Key, algo string) (float64, bool) {
	gr, ok := g.graphs[graphType]
	if !ok {
		return 0, false
	}
	t := gr.At(k)
	if t == nil {
		return 0, false
	}
	return t.Get(algo)
}

// GraphTypes returns graph types in encounter order.
func (g *Grouped) GraphTypes() []string {
	return append([]string(nil), g.order...)
}

// Graph returns the results for one graph type, or nil.
func (g *Grouped) Graph(graphType string) *GraphResults {
	return g.graphs[graphType]
}

// Algorithms returns every algorithm name seen, in encounter order.
func (g *Grouped) Algorithms() []string {
	seen := make(map[string]bool)
	var algos []string
	for _, gt := range g.order {
		gr := g.graphs[gt]
		for _, k := range gr.Keys() {
			for _, a := range gr.points[k].order {
				if !seen[a] {
					seen[a] = true
					algos = append(algos, a)
				}
			}
		}
	}
	return algos
}

// HasAlgorithm reports whether algo has a timing anywhere.
func (g *Grouped) HasAlgorithm(algo string) bool {
	for _, gr := range g.graphs {
		for _, t := range gr.points {
			if _, ok := t.values[algo]; ok {
				return true
			}
		}
	}
	return false
}

// Len returns the number of data points across all graph types.
func (g *Grouped) Len() int {
	n := 0
	for _, gr := range g.graphs {
		n += len(gr.points)
	}
	return n
}
