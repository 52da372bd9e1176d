// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/junitdiff/junitdiff/internal/meta"
	"github.com/junitdiff/junitdiff/internal/report"
	"github.com/junitdiff/junitdiff/internal/source"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// loadReports resolves a report directory spec (local path or s3:// URL) and
// loads every XML report found there into a suite map.
func loadReports(ctx context.Context, cmd *cli.Command, spec string) (*report.SuiteMap, error) {
	src, err := source.Open(ctx, spec, cmd.String("profile"), cmd.String("region"))
	if err != nil {
		return nil, fmt.Errorf("failed to open report source (%s): %w", spec, err)
	}
	return report.Load(ctx, src)
}

// useColor honors --color only when stdout is a terminal.
func useColor(cmd *cli.Command) bool {
	return cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd()))
}
