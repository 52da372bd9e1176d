// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/junitdiff/junitdiff/internal/meta"
)

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"junitdiff", "diff", "old", "new"})
	require.NoError(t, err)
	assert.Equal(t, "junitdiff", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"diff", "show", "completion"}, names)
}

func TestInitAppFlagsSorted(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"junitdiff", "show", "dir"})
	require.NoError(t, err)

	for _, cmd := range app.Commands {
		for i := 1; i < len(cmd.Flags); i++ {
			assert.LessOrEqual(t,
				cmd.Flags[i-1].Names()[0], cmd.Flags[i].Names()[0],
				"flags of %s are not sorted", cmd.Name)
		}
	}
}

func TestGetMeta(t *testing.T) {
	m := meta.Meta{Args: []string{"junitdiff", "diff"}}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}
	assert.Equal(t, m, GetMeta(cmd))

	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": "nope"}}))
}

func TestDiffCommandFlags(t *testing.T) {
	cmd := diffCommandBuilder(meta.Meta{})
	assert.Equal(t, "diff", cmd.Name)

	want := []string{"color", "html-file", "json-diff", "profile", "region", "titles", "tui", "verbose"}
	var got []string
	for _, f := range cmd.Flags {
		got = append(got, f.Names()[0])
	}
	assert.ElementsMatch(t, want, got)
}

func TestShowCommandFlags(t *testing.T) {
	cmd := showCommandBuilder(meta.Meta{})
	assert.Equal(t, "show", cmd.Name)

	want := []string{"color", "filter", "limit", "output", "profile", "region", "sort", "titles", "verbose"}
	var got []string
	for _, f := range cmd.Flags {
		got = append(got, f.Names()[0])
	}
	assert.ElementsMatch(t, want, got)
}
