package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the summary output.

var (
	// Headers
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	// Table
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")) // Purple-ish
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Padding(0, 1)
	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	// Ratio cells
	fasterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green
	slowerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	// Status lines
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Success renders a checked status line.
func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// Warn renders a warning status line.
func Warn(msg string) string {
	return warnStyle.Render("! " + msg)
}

// Error renders the fatal "Error: ..." line of a failed run.
func Error(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}

// Muted renders secondary text such as file paths.
func Muted(msg string) string {
	return mutedStyle.Render(msg)
}
