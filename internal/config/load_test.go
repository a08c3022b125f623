package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		require.NoError(t, Load(""))

		s := Get()
		assert.Equal(t, "BMSSP", s.Baseline)
		assert.Equal(t, "real_time", s.TimeField)
		assert.Equal(t, "plots", s.PlotsDir)
		assert.Equal(t, "results", s.ResultsDir)
		assert.Equal(t, SummaryTable, s.Summary)
		assert.Equal(t, 6.0, s.ChartWidth)
		assert.Equal(t, 4.0, s.ChartHeight)
		assert.False(t, s.Strict)
		assert.False(t, s.IncludeErrored)
		assert.Empty(t, FileUsed())

		// Load must not create a config file.
		_, err := os.Stat("speedup.yaml")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("SPEEDUP_BASELINE", "BOOSTDijkstra")
		t.Setenv("SPEEDUP_CHART_WIDTH", "9")

		require.NoError(t, Load(""))
		assert.Equal(t, "BOOSTDijkstra", Get().Baseline)
		assert.Equal(t, 9.0, Get().ChartWidth)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		chdir(t, dir)
		content := "baseline: STDPriorityQueue\ntime: cpu_time\nchart:\n  height: 5\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "speedup.yaml"), []byte(content), 0644))

		require.NoError(t, Load(""))
		s := Get()
		assert.Equal(t, "STDPriorityQueue", s.Baseline)
		assert.Equal(t, "cpu_time", s.TimeField)
		assert.Equal(t, 5.0, s.ChartHeight)
		assert.Equal(t, "speedup.yaml", filepath.Base(FileUsed()))
	})

	t.Run("Include Errored From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("SPEEDUP_INCLUDE_ERRORED", "true")

		require.NoError(t, Load(""))
		assert.True(t, Get().IncludeErrored)
	})

	t.Run("Explicit Missing File", func(t *testing.T) {
		viper.Reset()
		err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
