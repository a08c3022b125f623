package main

import (
	"fmt"

	"speedup/internal/benchmark"
	"speedup/internal/telemetry"

	"github.com/AlecAivazis/survey/v2"
)

var askOne = survey.AskOne

// chooseBaseline asks the user to pick another baseline when the configured
// one was never measured. It returns baseline unchanged when there is
// nothing to choose from or the prompt is cancelled.
func chooseBaseline(g *benchmark.Grouped, baseline string) (string, error) {
	if g.Len() == 0 || g.HasAlgorithm(baseline) {
		return baseline, nil
	}

	var selected string
	prompt := &survey.Select{
		Message:  fmt.Sprintf("Baseline %q was not measured. Select a baseline:", baseline),
		Options:  g.Algorithms(),
		PageSize: 15,
	}
	if err := askOne(prompt, &selected); err != nil {
		if err.Error() == "interrupt" {
			return baseline, nil
		}
		return "", fmt.Errorf("failed to select baseline: %w", err)
	}

	telemetry.LogInfo("Using selected baseline", "baseline", selected)
	return selected, nil
}
