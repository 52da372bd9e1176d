// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/junitdiff/junitdiff/internal/config"
	"github.com/junitdiff/junitdiff/internal/differ"
	"github.com/junitdiff/junitdiff/internal/log"
	"github.com/junitdiff/junitdiff/internal/meta"
	"github.com/junitdiff/junitdiff/internal/output"
)

// diffCommandAction is the action handler for the "diff" subcommand. It loads
// the baseline and candidate report sets, compares them, renders the result
// per the requested mode, and returns ErrVerdictFail on a failing verdict.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	dirs := cmd.Args().Slice()
	if len(dirs) != 2 {
		return fmt.Errorf("expected two report directories, got %d", len(dirs))
	}

	baseline, err := loadReports(ctx, cmd, dirs[0])
	if err != nil {
		return err
	}
	candidate, err := loadReports(ctx, cmd, dirs[1])
	if err != nil {
		return err
	}

	result := differ.Diff(baseline, candidate)

	if path := cmd.String("html-file"); path != "" {
		if err := output.SaveHTML(result, path); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		log.Infof("HTML report written to %s", path)
	}

	switch {
	case cmd.Bool("json-diff"):
		if err := differ.JSONDiff(baseline, candidate, os.Stdout, useColor(cmd)); err != nil {
			return err
		}
	case cmd.Bool("tui"):
		if err := differ.Browse(result); err != nil {
			return err
		}
	default:
		output.DiffTable(result, output.Options{
			Color:  useColor(cmd),
			Titles: cmd.Bool("titles"),
		}, os.Stdout)
	}

	if !result.Passed {
		return differ.ErrVerdictFail
	}

	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action/validator handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two report directories",
		UsageText: "junitdiff diff <junit4Dir> <junit5Dir> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewHTMLFileFlag("diff", meta.Config.Source),
			NewProfileFlag("diff", meta.Config.Source),
			NewRegionFlag("diff", meta.Config.Source),
			jsonDiffFlag,
			tuiFlag,
		}, NewGlobalFlags("diff")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: diffCommandAction,
	}
}
