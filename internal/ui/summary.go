package ui

import (
	"fmt"
	"strconv"
	"strings"

	"speedup/internal/benchmark"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// missingCell marks an algorithm that was not measured at a point.
const missingCell = "-"

// SummaryHeaders returns the column titles of a graph type's summary.
func SummaryHeaders(gs benchmark.GraphSpeedup) []string {
	h := []string{"nodes", "edges"}
	return append(h, gs.Columns...)
}

// SummaryRows returns one row of ratios per included data point.
func SummaryRows(gs benchmark.GraphSpeedup) [][]string {
	rows := make([][]string, 0, len(gs.Rows))
	for _, r := range gs.Rows {
		row := []string{strconv.Itoa(r.Nodes), strconv.Itoa(r.Edges)}
		for _, a := range gs.Columns {
			e, ok := r.Entry(a)
			if !ok {
				row = append(row, missingCell)
				continue
			}
			row = append(row, formatRatio(e.Ratio))
		}
		rows = append(rows, row)
	}
	return rows
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 3, 64)
}

// TableSummary renders every non-empty graph type as a lipgloss table.
// Ratios above 1 beat the baseline and are shown in green.
func TableSummary(graphs []benchmark.GraphSpeedup) string {
	var blocks []string
	for _, gs := range graphs {
		if gs.Empty() {
			continue
		}
		title := titleStyle.Render(fmt.Sprintf("%s (ratio over %s)", gs.GraphType, gs.Baseline))

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(tableBorderStyle).
			Headers(SummaryHeaders(gs)...).
			Rows(SummaryRows(gs)...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				return tableCellStyle
			})
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, title, colorRatios(t.Render())))
	}
	return strings.Join(blocks, "\n\n")
}

// colorRatios is applied after layout so cell widths are not affected by
// escape sequences.
func colorRatios(rendered string) string {
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		fields := strings.Split(line, "│")
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil || !strings.Contains(f, ".") {
				continue
			}
			switch {
			case v > 1:
				fields[j] = fasterStyle.Render(f)
			case v < 1:
				fields[j] = slowerStyle.Render(f)
			}
		}
		lines[i] = strings.Join(fields, "│")
	}
	return strings.Join(lines, "\n")
}

// MarkdownSummary builds a markdown document with one table per non-empty
// graph type.
func MarkdownSummary(graphs []benchmark.GraphSpeedup) string {
	var sb strings.Builder
	for _, gs := range graphs {
		if gs.Empty() {
			continue
		}
		headers := SummaryHeaders(gs)
		fmt.Fprintf(&sb, "## %s\n\n", gs.GraphType)
		fmt.Fprintf(&sb, "Ratio over `%s`.\n\n", gs.Baseline)
		fmt.Fprintf(&sb, "| %s |\n", strings.Join(headers, " | "))
		sb.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
		for _, row := range SummaryRows(gs) {
			fmt.Fprintf(&sb, "| %s |\n", strings.Join(row, " | "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FilesSummary lists the files written by a run.
func FilesSummary(charts []string, csvPath string) string {
	var lines []string
	for _, c := range charts {
		lines = append(lines, Success("chart ")+Muted(c))
	}
	if csvPath != "" {
		lines = append(lines, Success("csv   ")+Muted(csvPath))
	}
	if len(lines) == 0 {
		return Warn("no files written")
	}
	return strings.Join(lines, "\n")
}
