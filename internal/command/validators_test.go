// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "text", wantErr: false},
		{value: "json", wantErr: false},
		{value: "yaml", wantErr: false},
		{value: "raw", wantErr: true},
		{value: "", wantErr: true},
		{value: "TEXT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := OutputValidator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlagValidators(t *testing.T) {
	boom := errors.New("boom")
	pass := func(any) error { return nil }
	fail := func(any) error { return boom }

	assert.NoError(t, FlagValidators("x"))
	assert.NoError(t, FlagValidators("x", pass, pass))
	assert.ErrorIs(t, FlagValidators("x", pass, fail), boom)
}

func TestNewHTMLFileFlagSources(t *testing.T) {
	// Without a config file only the env source is present.
	flag := NewHTMLFileFlag("diff")
	assert.Len(t, flag.Sources.Chain, 1)

	// With a config file the namespaced and global keys are appended.
	flag = NewHTMLFileFlag("diff", "/tmp/junitdiff.yaml")
	assert.Len(t, flag.Sources.Chain, 3)
}
