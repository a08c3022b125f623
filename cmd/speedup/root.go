package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"speedup/internal/benchmark"
	"speedup/internal/config"
	"speedup/internal/report"
	"speedup/internal/telemetry"
	"speedup/internal/ui"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speedup <json_file>",
	Short: "Plot algorithm speedups from Google Benchmark results",
	Long: `speedup reads Google Benchmark JSON output for graph algorithms, computes
each algorithm's speedup over a baseline for every graph type, and writes one
line chart per graph type plus a CSV summary of the timings and ratios.

Benchmark names are expected to look like <prefix>_<GraphType>/<Algorithm>/...
and records must carry nodes_count and edges_count counters.

Data points where the baseline was not measured are left out. A graph type
with no baseline measurement at all gets no chart and no CSV section and is
listed as skipped in the summary. Aggregate rows and failed runs are
ignored unless --include-aggregates or --include-errored is given.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSpeedup,
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.Error(err))
		exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./speedup.yaml)")
	flags.String("baseline", "BMSSP", "Baseline algorithm the others are compared against")
	flags.Var(newTimeFieldFlag(benchmark.RealTime), "time", "Timing field to compare")
	flags.String("plots-dir", "plots", "Directory for chart images")
	flags.String("results-dir", "results", "Directory for the CSV summary")
	flags.Bool("strict", false, "Fail on duplicate entries instead of keeping the last one")
	flags.Bool("include-aggregates", false, "Include aggregate rows (mean, median, stddev)")
	flags.Bool("include-errored", false, "Include runs flagged with error_occurred")
	flags.Var(&summaryFlag{value: config.SummaryTable}, "summary", "Terminal summary format")
	flags.Bool("interactive", false, "Prompt for a baseline when the given one was not measured")
	flags.String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("log-file", "", "Also write logs to this file")
}

// bindFlags maps command-line flags onto config keys so flags take
// precedence over the config file and SPEEDUP_* environment variables.
func bindFlags(flags *pflag.FlagSet) {
	bindings := map[string]string{
		config.KeyBaseline:          "baseline",
		config.KeyTime:              "time",
		config.KeyPlotsDir:          "plots-dir",
		config.KeyResultsDir:        "results-dir",
		config.KeyStrict:            "strict",
		config.KeyIncludeAggregates: "include-aggregates",
		config.KeyIncludeErrored:    "include-errored",
		config.KeySummary:           "summary",
		config.KeyInteractive:       "interactive",
		config.KeyMetricsFile:       "metrics-file",
		config.KeyVerbose:           "verbose",
		config.KeyLogFile:           "log-file",
	}
	for key, name := range bindings {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

func runSpeedup(cmd *cobra.Command, args []string) error {
	start := time.Now()

	bindFlags(cmd.Flags())
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}
	s := config.Get()

	telemetry.InitLogger(s.Verbose, s.LogFile, cmd.ErrOrStderr(), "run_id", uuid.NewString())
	if f := config.FileUsed(); f != "" {
		telemetry.LogInfo("Using config file", "path", f)
	}

	if err := generate(cmd, args[0], s, start); err != nil {
		telemetry.LogError("Run failed", err, "file", args[0])
		return err
	}
	return nil
}

func generate(cmd *cobra.Command, file string, s config.Settings, start time.Time) error {
	field, err := benchmark.ParseTimeField(s.TimeField)
	if err != nil {
		return err
	}
	opts := benchmark.LoadOptions{
		TimeField:         field,
		IncludeAggregates: s.IncludeAggregates,
		IncludeErrored:    s.IncludeErrored,
	}
	if s.Strict {
		opts.Duplicates = benchmark.DuplicateReject
	}

	metrics := telemetry.NewMetrics()
	grouped, stats, err := benchmark.LoadFile(file, opts)
	if err != nil {
		return err
	}
	recordLoadStats(metrics, stats)
	telemetry.LogInfo("Loaded benchmark results",
		"file", file,
		"records", stats.Records,
		"loaded", stats.Loaded,
		"skipped", stats.SkippedTotal(),
		"graph_types", len(grouped.GraphTypes()),
		"time_unit", stats.TimeUnit,
	)

	baseline := s.Baseline
	if s.Interactive {
		if baseline, err = chooseBaseline(grouped, baseline); err != nil {
			return err
		}
	}

	r := &report.Reporter{
		Baseline:   baseline,
		PlotsDir:   s.PlotsDir,
		ResultsDir: s.ResultsDir,
		Charts:     report.NewPNGChart(s.ChartWidth, s.ChartHeight),
		Metrics:    metrics,
	}
	res, err := r.Run(grouped)
	if err != nil {
		return err
	}

	metrics.ObserveRun(start, time.Now())
	if s.MetricsFile != "" {
		if err := metrics.WriteTextfile(s.MetricsFile); err != nil {
			return err
		}
	}

	printSummary(cmd.OutOrStdout(), s.Summary, res)
	return nil
}

func recordLoadStats(m *telemetry.Metrics, stats benchmark.LoadStats) {
	m.RecordsLoaded.Add(float64(stats.Loaded))
	m.Duplicates.Add(float64(stats.Duplicates))
	for reason, n := range stats.Skipped {
		m.RecordsSkipped.WithLabelValues(reason).Add(float64(n))
	}
}

func printSummary(w io.Writer, format string, res *report.Result) {
	switch format {
	case config.SummaryNone:
		return
	case config.SummaryMarkdown:
		if md := ui.MarkdownSummary(res.Graphs); md != "" {
			fmt.Fprint(w, ui.RenderMarkdown(md, 80))
		}
	default:
		if t := ui.TableSummary(res.Graphs); t != "" {
			fmt.Fprintln(w, t)
			fmt.Fprintln(w)
		}
	}
	for _, gt := range res.Skipped {
		fmt.Fprintln(w, ui.Warn(fmt.Sprintf("%s: no data point has a baseline timing", gt)))
	}
	fmt.Fprintln(w, ui.FilesSummary(res.Charts, res.CSVPath))
}
