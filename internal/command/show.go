// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/junitdiff/junitdiff/internal/config"
	"github.com/junitdiff/junitdiff/internal/log"
	"github.com/junitdiff/junitdiff/internal/meta"
	"github.com/junitdiff/junitdiff/internal/output"
)

// showCommandAction is the action handler for the "show" subcommand. It loads
// one report directory and emits a suite-per-row dataset per common flags.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "show"

	dirs := cmd.Args().Slice()
	if len(dirs) != 1 {
		return fmt.Errorf("expected one report directory, got %d", len(dirs))
	}

	suites, err := loadReports(ctx, cmd, dirs[0])
	if err != nil {
		return err
	}

	rows := output.SuiteRows(suites)
	rows = output.FilterRows(rows, cmd.String("filter"))
	output.SortDataset(rows, cmd.String("sort"))

	if limit := cmd.Int("limit"); limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return output.EmitRows(rows, cmd.String("output"), output.Options{
		Color:  useColor(cmd),
		Titles: cmd.Bool("titles"),
	}, os.Stdout)
}

// showCommandBuilder constructs the cli.Command for "show", wiring metadata,
// flags, and action/validator handlers.
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "inspect a report directory",
		UsageText: "junitdiff show <reportDir> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated list of filters to apply to results",
			},
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "limit suites returned",
				Value:       0,
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format",
				Value:   "text",
				Validator: func(value string) error {
					return FlagValidators(value, OutputValidator)
				},
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "comma-separated list of attributes to sort the results by",
			},
			NewProfileFlag("show", meta.Config.Source),
			NewRegionFlag("show", meta.Config.Source),
		}, NewGlobalFlags("show")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: showCommandAction,
	}
}
