package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults",
			wantError: false,
		},
		{
			name: "Valid Overrides",
			setup: func() {
				viper.Set(KeyBaseline, "STDPriorityQueue")
				viper.Set(KeyTime, "cpu_time")
				viper.Set(KeySummary, SummaryMarkdown)
				viper.Set(KeyChartWidth, 8.5)
			},
			wantError: false,
		},
		{
			name: "Empty Baseline",
			setup: func() {
				viper.Set(KeyBaseline, "  ")
			},
			wantError: true,
			errMsg:    "baseline must not be empty",
		},
		{
			name: "Invalid Time Field",
			setup: func() {
				viper.Set(KeyTime, "wall_time")
			},
			wantError: true,
			errMsg:    "invalid time field",
		},
		{
			name: "Empty Plots Dir",
			setup: func() {
				viper.Set(KeyPlotsDir, "")
			},
			wantError: true,
			errMsg:    "plots_dir must not be empty",
		},
		{
			name: "Empty Results Dir",
			setup: func() {
				viper.Set(KeyResultsDir, "")
			},
			wantError: true,
			errMsg:    "results_dir must not be empty",
		},
		{
			name: "Invalid Summary",
			setup: func() {
				viper.Set(KeySummary, "html")
			},
			wantError: true,
			errMsg:    "summary must be one of",
		},
		{
			name: "Invalid Chart Height",
			setup: func() {
				viper.Set(KeyChartHeight, 0)
			},
			wantError: true,
			errMsg:    "chart.height must be positive",
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set(KeyTime, "bogus")
				viper.Set(KeyChartWidth, -1)
			},
			wantError: true,
			errMsg:    "configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()
			SetDefaults()

			if tt.setup != nil {
				tt.setup()
			}

			err := ValidateConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("ValidateConfig() expected error, got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateConfig() unexpected error: %v", err)
				}
			}
		})
	}
	viper.Reset()
}
