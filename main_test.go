// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junitdiff/junitdiff/internal/differ"
	"github.com/junitdiff/junitdiff/internal/report"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command",
			args:     []string{"junitdiff"},
			expected: []string{"junitdiff", "--help"},
		},
		{
			name:     "command present",
			args:     []string{"junitdiff", "diff", "old", "new"},
			expected: []string{"junitdiff", "diff", "old", "new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleNakedCommand(tt.args))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "no error",
			err:      nil,
			expected: 0,
		},
		{
			name:     "verdict fail",
			err:      differ.ErrVerdictFail,
			expected: 1,
		},
		{
			name:     "wrapped verdict fail",
			err:      fmt.Errorf("run: %w", differ.ErrVerdictFail),
			expected: 1,
		},
		{
			name:     "malformed report",
			err:      &report.MalformedReportError{File: "TEST-x.xml", Field: "tests"},
			expected: 2,
		},
		{
			name: "wrapped malformed report",
			err: fmt.Errorf("load: %w",
				&report.MalformedReportError{File: "TEST-x.xml", Field: "name"}),
			expected: 2,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}

func TestProcessSetOnlyNoSet(t *testing.T) {
	args := []string{"junitdiff", "diff", "old", "new", "--titles"}
	assert.Equal(t, args, processSetOnly(args))
}
