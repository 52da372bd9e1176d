// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"errors"

	"github.com/apex/log"

	"github.com/junitdiff/junitdiff/internal/report"
)

// ErrVerdictFail is the sentinel returned by commands when the comparison
// itself succeeded but the verdict is FAIL. main maps it to a distinct exit
// code.
var ErrVerdictFail = errors.New("diff verdict: fail")

// Result is the structured outcome of one comparison. Suites appear in
// baseline insertion order; that order affects report layout only, never the
// verdict.
type Result struct {
	Passed bool        `json:"passed" yaml:"passed"`
	Suites []SuiteDiff `json:"suites" yaml:"suites"`
}

// SuiteDiff is the comparison of one baseline suite against the candidate
// map. When Lost is set the suite has no counterpart and no case-level detail
// was computed.
type SuiteDiff struct {
	Name    string       `json:"name" yaml:"name"`
	Lost    bool         `json:"lost" yaml:"lost"`
	Cases   []CaseDiff   `json:"cases,omitempty" yaml:"cases,omitempty"`
	Summary *SummaryDiff `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Passed reports whether nothing in this suite forced the verdict down.
func (sd *SuiteDiff) Passed() bool {
	if sd.Lost {
		return false
	}
	for _, c := range sd.Cases {
		if !c.Matched {
			return false
		}
	}
	return sd.Summary == nil || sd.Summary.Matched
}

// CaseDiff is the comparison of one baseline case. Lost and Matched are
// mutually exclusive; a lost case carries only the baseline outcome.
type CaseDiff struct {
	Name    string         `json:"name" yaml:"name"`
	Lost    bool           `json:"lost" yaml:"lost"`
	Matched bool           `json:"matched" yaml:"matched"`
	Before  report.Outcome `json:"before" yaml:"before"`
	After   report.Outcome `json:"after,omitempty" yaml:"after,omitempty"`
}

// SummaryDiff is the pairwise comparison of the four summary counters. It is
// computed independently of the per-case comparison even though the two would
// normally agree; both can fail the suite on their own.
type SummaryDiff struct {
	Before report.Counters `json:"before" yaml:"before"`
	After  report.Counters `json:"after" yaml:"after"`

	TestsDiffer    bool `json:"testsDiffer" yaml:"testsDiffer"`
	FailuresDiffer bool `json:"failuresDiffer" yaml:"failuresDiffer"`
	ErrorsDiffer   bool `json:"errorsDiffer" yaml:"errorsDiffer"`
	SkippedDiffer  bool `json:"skippedDiffer" yaml:"skippedDiffer"`

	Matched bool `json:"matched" yaml:"matched"`
}

// Diff compares the candidate suite map against the baseline. Comparison is
// keyed strictly by baseline identifiers; suites or cases present only in the
// candidate are never surfaced. The verdict is always computed, whether or
// not a report gets rendered.
func Diff(baseline, candidate *report.SuiteMap) *Result {
	log.Debugf(">> differ()")

	result := &Result{Passed: true}

	for _, suiteName := range baseline.Names() {
		before, _ := baseline.Get(suiteName)

		after, found := candidate.Get(suiteName)
		if !found {
			result.Passed = false
			log.Debugf("[%s] Junit 4 Test lost.", suiteName)
			result.Suites = append(result.Suites, SuiteDiff{Name: suiteName, Lost: true})
			continue
		}

		sd := SuiteDiff{Name: suiteName}

		for _, caseName := range before.CaseNames() {
			beforeOutcome, _ := before.Case(caseName)

			afterOutcome, found := after.Case(caseName)
			switch {
			case !found:
				result.Passed = false
				log.Debugf("[%s] in [%s] Junit 4 test case lost.", caseName, suiteName)
				sd.Cases = append(sd.Cases, CaseDiff{
					Name:   caseName,
					Lost:   true,
					Before: beforeOutcome,
				})
			case afterOutcome == beforeOutcome:
				log.Debugf("%s matches.", caseName)
				sd.Cases = append(sd.Cases, CaseDiff{
					Name:    caseName,
					Matched: true,
					Before:  beforeOutcome,
					After:   afterOutcome,
				})
			default:
				result.Passed = false
				log.Debugf("%s changes from %s to %s.", caseName, beforeOutcome, afterOutcome)
				sd.Cases = append(sd.Cases, CaseDiff{
					Name:   caseName,
					Before: beforeOutcome,
					After:  afterOutcome,
				})
			}
		}

		log.Debugf("Before: %s", before.Counters.Summary())
		log.Debugf("After: %s", after.Counters.Summary())

		summary := compareCounters(before.Counters, after.Counters)
		if !summary.Matched {
			result.Passed = false
		}
		sd.Summary = &summary

		result.Suites = append(result.Suites, sd)
	}

	if result.Passed {
		log.Debug("Diff result : Pass")
	} else {
		log.Debug("Diff result : Fail")
	}

	return result
}

// compareCounters flags every counter that differs between the two sides.
func compareCounters(before, after report.Counters) SummaryDiff {
	sd := SummaryDiff{
		Before:         before,
		After:          after,
		TestsDiffer:    before.Tests != after.Tests,
		FailuresDiffer: before.Failures != after.Failures,
		ErrorsDiffer:   before.Errors != after.Errors,
		SkippedDiffer:  before.Skipped != after.Skipped,
	}
	sd.Matched = !sd.TestsDiffer && !sd.FailuresDiffer && !sd.ErrorsDiffer && !sd.SkippedDiffer
	return sd
}
