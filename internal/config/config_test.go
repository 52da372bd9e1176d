// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets JUNITDIFF_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("JUNITDIFF_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	cleanup := setupTestConfig(t, testFile)
	defer cleanup()
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Contains(t, cfg.Data, "html_file")
				assert.Equal(t, "/tmp/report.html", cfg.Data["html_file"])
				assert.Equal(t, "us-east-1", cfg.Data["region"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				diffNs, ok := cfg.Data["diff"].(map[string]interface{})
				assert.True(t, ok, "diff should be a map")
				assert.Equal(t, "/var/reports/diff.html", diffNs["html_file"])
				show, ok := cfg.Data["show"].(map[string]interface{})
				assert.True(t, ok, "show should be a map")
				assert.Equal(t, "json", show["output"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		v, err := GetString("html_file")
		assert.NoError(t, err)
		assert.Equal(t, "/tmp/report.html", v)

		// Missing key with default.
		v, err = GetString("nope", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", v)

		// Missing key without default.
		_, err = GetString("nope")
		assert.Error(t, err)
	})
}

func TestGetStringNamespaced(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "diff"
		defer func() { Config.Namespace = "" }()

		v, err := GetString("html_file")
		assert.NoError(t, err)
		assert.Equal(t, "/var/reports/diff.html", v)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetInt("show.limit")
		assert.NoError(t, err)
		assert.Equal(t, 50, v)

		v, err = GetInt("nope", 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, v)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetStringSlice("diff.defaults")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--color", "--titles"}, v)

		_, err = GetStringSlice("show.limit")
		assert.Error(t, err)
	})
}
