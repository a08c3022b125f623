package benchmark

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSpeedups_Example(t *testing.T) {
	grouped, _, err := LoadFile(filepath.Join("testdata", "example.json"), LoadOptions{})
	require.NoError(t, err)

	graphs := ComputeSpeedups(grouped, "BMSSP")
	require.Len(t, graphs, 1)

	gs := graphs[0]
	assert.Equal(t, "Sparse", gs.GraphType)
	assert.Equal(t, []string{"Dijkstra"}, gs.Columns)
	require.Len(t, gs.Rows, 1)
	assert.Equal(t, Key{10, 20}, gs.Rows[0].Key)
	assert.Equal(t, 100.0, gs.Rows[0].BaselineTime)

	e, ok := gs.Rows[0].Entry("Dijkstra")
	require.True(t, ok)
	assert.Equal(t, 200.0, e.Time)
	assert.InDelta(t, 0.5, e.Ratio, 1e-12)

	require.Len(t, gs.Series, 2)
	assert.Equal(t, "BMSSP", gs.Series[0].Algorithm)
	assert.True(t, gs.Series[0].Baseline)
	assert.Equal(t, []SeriesPoint{{Nodes: 10, Edges: 20, Ratio: 1.0}}, gs.Series[0].Points)
	assert.Equal(t, "Dijkstra", gs.Series[1].Algorithm)
	assert.InDelta(t, 0.5, gs.Series[1].Points[0].Ratio, 1e-12)
}

func TestComputeSpeedups_DropsPointsWithoutBaseline(t *testing.T) {
	grouped, _, err := LoadFile(filepath.Join("testdata", "google_benchmark.json"), LoadOptions{})
	require.NoError(t, err)

	graphs := ComputeSpeedups(grouped, "BMSSP")
	require.Len(t, graphs, 2)

	rg := graphs[0]
	assert.Equal(t, "RandomGraph", rg.GraphType)
	assert.Equal(t, 1, rg.Dropped)
	assert.Equal(t, []string{"STDPriorityQueue", "BOOSTDijkstra"}, rg.Columns)
	require.Len(t, rg.Rows, 2)
	assert.Equal(t, Key{1000, 5000}, rg.Rows[0].Key)
	assert.Equal(t, Key{2000, 8000}, rg.Rows[1].Key)

	e, ok := rg.Rows[0].Entry("STDPriorityQueue")
	require.True(t, ok)
	assert.InDelta(t, 2.0, e.Ratio, 1e-12)
	e, ok = rg.Rows[0].Entry("BOOSTDijkstra")
	require.True(t, ok)
	assert.InDelta(t, 0.5, e.Ratio, 1e-12)

	_, ok = rg.Rows[1].Entry("BOOSTDijkstra")
	assert.False(t, ok)

	// BOOSTDijkstra at (3000,9000) has no baseline and must not surface.
	for _, s := range rg.Series {
		for _, p := range s.Points {
			assert.NotEqual(t, 3000, p.Nodes, "series %s", s.Algorithm)
		}
	}

	bgp := graphs[1]
	assert.Equal(t, "BGP", bgp.GraphType)
	assert.Empty(t, bgp.Columns)
	require.Len(t, bgp.Rows, 1)
	require.Len(t, bgp.Series, 1)
	assert.True(t, bgp.Series[0].Baseline)
}

func TestComputeSpeedups_BaselineAlwaysOne(t *testing.T) {
	g := NewGrouped()
	g.Add("Dense", Key{100, 1000}, "Base", 3.3)
	g.Add("Dense", Key{100, 1000}, "Other", 1.1)
	g.Add("Dense", Key{50, 500}, "Other", 0.7)
	g.Add("Dense", Key{50, 500}, "Base", 0.9)
	g.Add("Dense", Key{200, 2000}, "Base", 7.77)

	graphs := ComputeSpeedups(g, "Base")
	require.Len(t, graphs, 1)

	gs := graphs[0]
	require.Len(t, gs.Rows, 3)
	for _, row := range gs.Rows {
		e, ok := row.Entry("Base")
		require.True(t, ok)
		assert.Equal(t, 1.0, e.Ratio)
		if o, ok := row.Entry("Other"); ok {
			assert.InDelta(t, row.BaselineTime/o.Time, o.Ratio, 1e-12)
		}
	}

	// Rows ascend by node count regardless of insertion order.
	assert.Equal(t, 50, gs.Rows[0].Nodes)
	assert.Equal(t, 100, gs.Rows[1].Nodes)
	assert.Equal(t, 200, gs.Rows[2].Nodes)

	// Columns come from the first included point, where Other was seen first.
	assert.Equal(t, []string{"Other"}, gs.Columns)
	assert.Equal(t, "Base", gs.Series[0].Algorithm)
	assert.Len(t, gs.Series[0].Points, 3)
	assert.Len(t, gs.Series[1].Points, 2)
}

func TestComputeSpeedups_NoBaseline(t *testing.T) {
	g := NewGrouped()
	g.Add("Dense", Key{1, 1}, "A", 1)

	graphs := ComputeSpeedups(g, "Missing")
	require.Len(t, graphs, 1)
	assert.True(t, graphs[0].Empty())
	assert.Equal(t, 1, graphs[0].Dropped)
	assert.Empty(t, graphs[0].Series)
}
