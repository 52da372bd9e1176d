// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"encoding/xml"
	"strconv"
	"time"

	"github.com/junitdiff/junitdiff/internal/log"
)

// Source yields the report documents of one result set. Implementations live
// in the source package (local directory, S3 prefix); the loader only needs
// enumeration and retrieval.
type Source interface {
	// Entries returns the names of the .xml report files, non-recursive, in
	// discovery order.
	Entries(ctx context.Context) ([]string, error)
	// Read returns one entry's contents and modification time.
	Read(ctx context.Context, name string) ([]byte, time.Time, error)
	String() string
}

// suiteDocument mirrors the surefire report root element. The root tag name is
// deliberately unconstrained; only the attributes and testcase children
// matter. Counter attributes decode as *string so a missing attribute is
// distinguishable from "0".
type suiteDocument struct {
	Name     *string       `xml:"name,attr"`
	Tests    *string       `xml:"tests,attr"`
	Errors   *string       `xml:"errors,attr"`
	Failures *string       `xml:"failures,attr"`
	Skipped  *string       `xml:"skipped,attr"`
	Cases    []caseElement `xml:"testcase"`
}

type caseElement struct {
	Name    string  `xml:"name,attr"`
	Error   *marker `xml:"error"`
	Skipped *marker `xml:"skipped"`
	Failure *marker `xml:"failure"`
}

type marker struct{}

// Load reads every report in the source and returns the suite map. Any
// malformed document aborts the load.
func Load(ctx context.Context, src Source) (*SuiteMap, error) {
	entries, err := src.Entries(ctx)
	if err != nil {
		return nil, err
	}
	log.Debugf("%d XML files found in %s", len(entries), src)

	m := NewSuiteMap()
	for _, name := range entries {
		data, modified, err := src.Read(ctx, name)
		if err != nil {
			return nil, err
		}

		suite, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		suite.File = name
		suite.Modified = modified

		m.Add(suite)
	}

	return m, nil
}

// Parse extracts one suite from a report document. The file name is carried
// into any MalformedReportError for diagnostics.
func Parse(file string, data []byte) (*Suite, error) {
	var doc suiteDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedReportError{File: file, Err: err}
	}

	if doc.Name == nil {
		return nil, &MalformedReportError{File: file, Field: "name"}
	}

	counters := Counters{}
	for _, attr := range []struct {
		name  string
		raw   *string
		field *int
	}{
		{"tests", doc.Tests, &counters.Tests},
		{"errors", doc.Errors, &counters.Errors},
		{"failures", doc.Failures, &counters.Failures},
		{"skipped", doc.Skipped, &counters.Skipped},
	} {
		if attr.raw == nil {
			return nil, &MalformedReportError{File: file, Field: attr.name}
		}
		n, err := strconv.Atoi(*attr.raw)
		if err != nil {
			return nil, &MalformedReportError{File: file, Field: attr.name, Err: err}
		}
		*attr.field = n
	}

	cases := make([]Case, 0, len(doc.Cases))
	for _, c := range doc.Cases {
		cases = append(cases, Case{Name: c.Name, Outcome: c.outcome()})
	}

	return NewSuite(*doc.Name, counters, cases), nil
}

// outcome classifies a case by its child markers. The priority order
// error > skipped > failure is a contract: a malformed case carrying several
// markers resolves to error.
func (c caseElement) outcome() Outcome {
	switch {
	case c.Error != nil:
		return OutcomeError
	case c.Skipped != nil:
		return OutcomeSkipped
	case c.Failure != nil:
		return OutcomeFailure
	default:
		return OutcomeSuccess
	}
}
