// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWithProfile verifies that WithProfile sets the profile option
// correctly.
func TestWithProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{
			name:     "empty profile",
			profile:  "",
			expected: "",
		},
		{
			name:     "default profile",
			profile:  "default",
			expected: "default",
		},
		{
			name:     "custom profile",
			profile:  "ci-reports",
			expected: "ci-reports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithProfile(tt.profile)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.profile)
		})
	}
}

// TestWithRegion verifies that WithRegion sets the region option
// correctly.
func TestWithRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{
			name:     "empty region",
			region:   "",
			expected: "",
		},
		{
			name:     "us-east-1",
			region:   "us-east-1",
			expected: "us-east-1",
		},
		{
			name:     "eu-central-1",
			region:   "eu-central-1",
			expected: "eu-central-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithRegion(tt.region)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.region)
		})
	}
}
