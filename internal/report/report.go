// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"time"

	"github.com/junitdiff/junitdiff/internal/log"
)

// Outcome is the classification of a single test case result.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailure Outcome = "failure"
)

// Counters are the four summary attributes carried on a suite's root element.
// They come straight from the input and are not validated against the
// per-case outcomes.
type Counters struct {
	Tests    int `json:"tests" yaml:"tests"`
	Errors   int `json:"errors" yaml:"errors"`
	Failures int `json:"failures" yaml:"failures"`
	Skipped  int `json:"skipped" yaml:"skipped"`
}

// Summary renders the counters the way they appear in the rendered report.
func (c Counters) Summary() string {
	return fmt.Sprintf("Total %d, Failures %d, Errors %d, Skipped %d",
		c.Tests, c.Failures, c.Errors, c.Skipped)
}

// Case is a named test case outcome. Used to construct suites in case order.
type Case struct {
	Name    string
	Outcome Outcome
}

// Suite is the parsed form of one report file. It is immutable once
// constructed; case outcomes are reached through Case and CaseNames.
type Suite struct {
	Name     string
	Counters Counters

	// File and Modified identify the document the suite came from. They feed
	// the show command, not the comparison.
	File     string
	Modified time.Time

	caseOrder []string
	cases     map[string]Outcome
}

// NewSuite builds a suite from ordered cases. A repeated case name keeps its
// first position and takes the last outcome, matching map semantics in the
// report files themselves.
func NewSuite(name string, counters Counters, cases []Case) *Suite {
	s := &Suite{
		Name:     name,
		Counters: counters,
		cases:    make(map[string]Outcome, len(cases)),
	}
	for _, c := range cases {
		if _, seen := s.cases[c.Name]; !seen {
			s.caseOrder = append(s.caseOrder, c.Name)
		}
		s.cases[c.Name] = c.Outcome
	}
	return s
}

// Case returns the outcome for the named case and whether it exists.
func (s *Suite) Case(name string) (Outcome, bool) {
	o, ok := s.cases[name]
	return o, ok
}

// CaseNames returns the case names in document order.
func (s *Suite) CaseNames() []string {
	names := make([]string, len(s.caseOrder))
	copy(names, s.caseOrder)
	return names
}

// CaseCount returns the number of cases in the suite.
func (s *Suite) CaseCount() int {
	return len(s.caseOrder)
}

// SuiteMap is a mapping from suite name to suite, one per input directory.
// Iteration order is the order suites were added (file-discovery order).
type SuiteMap struct {
	order  []string
	suites map[string]*Suite
}

// NewSuiteMap returns an empty suite map.
func NewSuiteMap() *SuiteMap {
	return &SuiteMap{suites: make(map[string]*Suite)}
}

// Add inserts a suite. A duplicate name silently replaces the earlier suite
// (last write wins) but keeps its original position; the collision is logged
// at warn level because it usually means two report files claim the same
// class.
func (m *SuiteMap) Add(s *Suite) {
	if old, ok := m.suites[s.Name]; ok {
		log.Warnf("duplicate suite %q: %s overwrites %s", s.Name, s.File, old.File)
	} else {
		m.order = append(m.order, s.Name)
	}
	m.suites[s.Name] = s
}

// Get returns the suite for the given name and whether it exists.
func (m *SuiteMap) Get(name string) (*Suite, bool) {
	s, ok := m.suites[name]
	return s, ok
}

// Names returns the suite names in insertion order.
func (m *SuiteMap) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Len returns the number of suites.
func (m *SuiteMap) Len() int {
	return len(m.order)
}

// MalformedReportError marks a structurally invalid report file: a missing
// required attribute or a document the XML parser rejects. It aborts the whole
// run; there is no partial report.
type MalformedReportError struct {
	File  string
	Field string
	Err   error
}

func (e *MalformedReportError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("malformed report %s: invalid attribute %q: %v", e.File, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("malformed report %s: missing required attribute %q", e.File, e.Field)
	default:
		return fmt.Sprintf("malformed report %s: %v", e.File, e.Err)
	}
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}
