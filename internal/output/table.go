// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/junitdiff/junitdiff/internal/differ"
)

// Options control terminal rendering.
type Options struct {
	Color  bool
	Titles bool
}

// DiffTable renders the diff result as a terminal table: one row per case plus
// a summary row per suite. Output is written to w; nil means stdout.
func DiffTable(result *differ.Result, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if result.Passed {
		fmt.Fprintln(w, "Final Diff Result : PASS")
	} else {
		fmt.Fprintln(w, "Final Diff Result : FAIL")
	}

	var rows [][]string
	var failed []int // indexes of rows carrying a discrepancy

	for _, s := range result.Suites {
		if s.Lost {
			failed = append(failed, len(rows))
			rows = append(rows, []string{s.Name, "", "X", "Junit 4 Test lost.", ""})
			continue
		}

		for _, c := range s.Cases {
			switch {
			case c.Lost:
				failed = append(failed, len(rows))
				rows = append(rows, []string{s.Name, c.Name, "X", string(c.Before), "lost"})
			case c.Matched:
				rows = append(rows, []string{s.Name, c.Name, "O", string(c.Before), string(c.After)})
			default:
				failed = append(failed, len(rows))
				rows = append(rows, []string{s.Name, c.Name, "X", string(c.Before), string(c.After)})
			}
		}

		if s.Summary != nil {
			mark := "O"
			if !s.Summary.Matched {
				mark = "X"
				failed = append(failed, len(rows))
			}
			rows = append(rows, []string{
				s.Name, "Summary", mark,
				s.Summary.Before.Summary(),
				s.Summary.After.Summary(),
			})
		}
	}

	writeTable(rows, []string{"suite", "case", "result", "junit 4", "junit 5"}, failed, opts, w)
}

// RowsTable renders a generic dataset the way the show command needs it.
func RowsTable(rows []map[string]interface{}, columns []string, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var cells [][]string
	for _, row := range rows {
		line := make([]string, 0, len(columns))
		for _, col := range columns {
			line = append(line, InterfaceToString(row[col], "-"))
		}
		cells = append(cells, line)
	}

	writeTable(cells, columns, nil, opts, w)
}

func writeTable(rows [][]string, headers []string, failed []int, opts Options, w io.Writer) {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	failStyle := cellStyle

	if opts.Color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("#f6be00"))
		failStyle = failStyle.Foreground(lipgloss.Color("#ff5555"))
	}

	failedRows := make(map[int]bool, len(failed))
	for _, idx := range failed {
		failedRows[idx] = true
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case failedRows[row]:
				style = failStyle
			default:
				style = cellStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Counter values have no fractional part after a JSON round trip.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
