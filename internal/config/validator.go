package config

import (
	"fmt"
	"strings"

	"speedup/internal/benchmark"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if strings.TrimSpace(viper.GetString(KeyBaseline)) == "" {
		errors = append(errors, "baseline must not be empty")
	}

	if _, err := benchmark.ParseTimeField(viper.GetString(KeyTime)); err != nil {
		errors = append(errors, err.Error())
	}

	if viper.GetString(KeyPlotsDir) == "" {
		errors = append(errors, "plots_dir must not be empty")
	}
	if viper.GetString(KeyResultsDir) == "" {
		errors = append(errors, "results_dir must not be empty")
	}

	switch s := viper.GetString(KeySummary); s {
	case SummaryTable, SummaryMarkdown, SummaryNone:
	default:
		errors = append(errors, fmt.Sprintf("summary must be one of table, markdown, none, got: %q", s))
	}

	// Chart dimensions are in inches
	if w := viper.GetFloat64(KeyChartWidth); w <= 0 {
		errors = append(errors, fmt.Sprintf("chart.width must be positive, got: %v", w))
	}
	if h := viper.GetFloat64(KeyChartHeight); h <= 0 {
		errors = append(errors, fmt.Sprintf("chart.height must be positive, got: %v", h))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
