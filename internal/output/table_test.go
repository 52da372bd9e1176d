// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffTablePass(t *testing.T) {
	var buf bytes.Buffer
	DiffTable(passingResult(), Options{Titles: true}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Final Diff Result : PASS")
	assert.Contains(t, out, "com.foo.BarTest")
	assert.Contains(t, out, "testA")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "suite")
}

func TestDiffTableFail(t *testing.T) {
	var buf bytes.Buffer
	DiffTable(failingResult(), Options{}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Final Diff Result : FAIL")
	assert.Contains(t, out, "Junit 4 Test lost.")
	// No titles requested.
	assert.NotContains(t, out, "junit 5")
}

func TestRowsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	RowsTable(nil, SuiteColumns, Options{Titles: true}, &buf)
	assert.Empty(t, buf.String())
}
