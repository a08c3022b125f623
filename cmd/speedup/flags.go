package main

import (
	"fmt"

	"speedup/internal/benchmark"
	"speedup/internal/config"
)

// timeFieldFlag restricts --time to the timing fields of a record.
type timeFieldFlag struct {
	field benchmark.TimeField
}

func newTimeFieldFlag(def benchmark.TimeField) *timeFieldFlag {
	return &timeFieldFlag{field: def}
}

func (f *timeFieldFlag) String() string { return f.field.String() }

func (f *timeFieldFlag) Set(s string) error {
	tf, err := benchmark.ParseTimeField(s)
	if err != nil {
		return err
	}
	f.field = tf
	return nil
}

func (f *timeFieldFlag) Type() string { return benchmark.TimeFieldChoices("|") }

// summaryFlag restricts --summary to the supported renderers.
type summaryFlag struct {
	value string
}

func (f *summaryFlag) String() string { return f.value }

func (f *summaryFlag) Set(s string) error {
	switch s {
	case config.SummaryTable, config.SummaryMarkdown, config.SummaryNone:
		f.value = s
		return nil
	}
	return fmt.Errorf("must be one of %s, %s, %s", config.SummaryTable, config.SummaryMarkdown, config.SummaryNone)
}

func (f *summaryFlag) Type() string { return "table|markdown|none" }
