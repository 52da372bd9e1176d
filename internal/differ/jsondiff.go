// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/junitdiff/junitdiff/internal/report"
)

// JSONDiff prints a raw structural diff of the two suite maps. Unlike Diff it
// is symmetric (candidate-only suites show up as additions), which makes it a
// useful second opinion but not the verdict.
func JSONDiff(baseline, candidate *report.SuiteMap, w io.Writer, coloring bool) error {
	left, err := json.Marshal(mapView(baseline))
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	right, err := json.Marshal(mapView(candidate))
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	log.Debugf("len(docs): %d %d", len(left), len(right))

	d := gojsondiff.New()
	delta, err := d.Compare(left, right)
	if err != nil {
		return fmt.Errorf("failed to compare report sets: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The report sets are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal baseline: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}

// mapView flattens a suite map into plain JSON-friendly maps.
func mapView(m *report.SuiteMap) map[string]interface{} {
	view := make(map[string]interface{}, m.Len())
	for _, name := range m.Names() {
		suite, _ := m.Get(name)

		cases := make(map[string]string, suite.CaseCount())
		for _, cn := range suite.CaseNames() {
			outcome, _ := suite.Case(cn)
			cases[cn] = string(outcome)
		}

		view[name] = map[string]interface{}{
			"tests":    suite.Counters.Tests,
			"errors":   suite.Counters.Errors,
			"failures": suite.Counters.Failures,
			"skipped":  suite.Counters.Skipped,
			"cases":    cases,
		}
	}
	return view
}
