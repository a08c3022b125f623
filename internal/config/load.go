package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file and SPEEDUP_* environment variables.
const (
	KeyBaseline          = "baseline"
	KeyTime              = "time"
	KeyPlotsDir          = "plots_dir"
	KeyResultsDir        = "results_dir"
	KeyStrict            = "strict"
	KeyIncludeAggregates = "include_aggregates"
	KeyIncludeErrored    = "include_errored"
	KeySummary           = "summary"
	KeyInteractive       = "interactive"
	KeyMetricsFile       = "metrics_file"
	KeyVerbose           = "verbose"
	KeyLogFile           = "log_file"
	KeyChartWidth        = "chart.width"
	KeyChartHeight       = "chart.height"
)

// Summary formats.
const (
	SummaryTable    = "table"
	SummaryMarkdown = "markdown"
	SummaryNone     = "none"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	Baseline          string
	TimeField         string
	PlotsDir          string
	ResultsDir        string
	Strict            bool
	IncludeAggregates bool
	IncludeErrored    bool
	Summary           string
	Interactive       bool
	MetricsFile       string
	Verbose           bool
	LogFile           string
	ChartWidth        float64
	ChartHeight       float64
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyBaseline, "BMSSP")
	viper.SetDefault(KeyTime, "real_time")
	viper.SetDefault(KeyPlotsDir, "plots")
	viper.SetDefault(KeyResultsDir, "results")
	viper.SetDefault(KeyStrict, false)
	viper.SetDefault(KeyIncludeAggregates, false)
	viper.SetDefault(KeyIncludeErrored, false)
	viper.SetDefault(KeySummary, SummaryTable)
	viper.SetDefault(KeyInteractive, false)
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyChartWidth, 6.0)
	viper.SetDefault(KeyChartHeight, 4.0)
}

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; an explicit cfgFile that
// cannot be read is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("speedup")
	}

	viper.SetEnvPrefix("SPEEDUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// FileUsed returns the config file that was read, or "" when settings come
// only from defaults, flags and the environment.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Get returns the current settings.
func Get() Settings {
	return Settings{
		Baseline:          viper.GetString(KeyBaseline),
		TimeField:         viper.GetString(KeyTime),
		PlotsDir:          viper.GetString(KeyPlotsDir),
		ResultsDir:        viper.GetString(KeyResultsDir),
		Strict:            viper.GetBool(KeyStrict),
		IncludeAggregates: viper.GetBool(KeyIncludeAggregates),
		IncludeErrored:    viper.GetBool(KeyIncludeErrored),
		Summary:           viper.GetString(KeySummary),
		Interactive:       viper.GetBool(KeyInteractive),
		MetricsFile:       viper.GetString(KeyMetricsFile),
		Verbose:           viper.GetBool(KeyVerbose),
		LogFile:           viper.GetString(KeyLogFile),
		ChartWidth:        viper.GetFloat64(KeyChartWidth),
		ChartHeight:       viper.GetFloat64(KeyChartHeight),
	}
}
