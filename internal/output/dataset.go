// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/junitdiff/junitdiff/internal/log"
	"github.com/junitdiff/junitdiff/internal/report"
)

// SuiteColumns is the column order for suite datasets.
var SuiteColumns = []string{"name", "tests", "errors", "failures", "skipped", "cases", "file", "modified"}

// SuiteRows flattens a suite map into one dataset row per suite, in insertion
// order.
func SuiteRows(m *report.SuiteMap) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, m.Len())
	for _, name := range m.Names() {
		suite, _ := m.Get(name)

		modified := ""
		if !suite.Modified.IsZero() {
			modified = humanize.Time(suite.Modified)
		}

		rows = append(rows, map[string]interface{}{
			"name":     suite.Name,
			"tests":    suite.Counters.Tests,
			"errors":   suite.Counters.Errors,
			"failures": suite.Counters.Failures,
			"skipped":  suite.Counters.Skipped,
			"cases":    suite.CaseCount(),
			"file":     suite.File,
			"modified": modified,
		})
	}
	return rows
}

// FilterRows keeps the rows matching every entry of a comma-separated filter
// spec. An entry is key=value (exact) or key~value (substring); a bare key
// requires the field to be non-empty. Unknown keys never match.
func FilterRows(rows []map[string]interface{}, spec string) []map[string]interface{} {
	if spec == "" {
		return rows
	}

	var kept []map[string]interface{}
	for _, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			log.Errorf("row marshal: %v", err)
			continue
		}

		matched := true
		for _, entry := range strings.Split(spec, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			if !matchFilter(raw, entry) {
				matched = false
				break
			}
		}

		if matched {
			kept = append(kept, row)
		}
	}

	return kept
}

func matchFilter(raw []byte, entry string) bool {
	var key, op, want string
	switch {
	case strings.Contains(entry, "="):
		parts := strings.SplitN(entry, "=", 2)
		key, op, want = parts[0], "=", parts[1]
	case strings.Contains(entry, "~"):
		parts := strings.SplitN(entry, "~", 2)
		key, op, want = parts[0], "~", parts[1]
	default:
		key = entry
	}

	value := gjson.GetBytes(raw, key)
	if !value.Exists() {
		return false
	}

	switch op {
	case "=":
		return value.String() == want
	case "~":
		return strings.Contains(strings.ToLower(value.String()), strings.ToLower(want))
	default:
		return value.String() != ""
	}
}

// SortDataset sorts rows in place by a comma-separated spec. A leading "-"
// sorts the field descending, a leading "!" compares case-sensitively.
// Numeric values compare numerically, everything else as strings.
func SortDataset(rows []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	fields := strings.Split(spec, ",")

	sort.SliceStable(rows, func(one, two int) bool {
		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneValue := rows[one][field]
			twoValue := rows[two][field]

			oneNum, oneOk := toFloat(oneValue)
			twoNum, twoOk := toFloat(twoValue)

			if oneOk && twoOk {
				if oneNum != twoNum {
					if ascending {
						return oneNum < twoNum
					}
					return oneNum > twoNum
				}
				continue
			}

			// Fall back to string comparison which can also handle bools.
			oneStr := InterfaceToString(oneValue)
			twoStr := InterfaceToString(twoValue)

			if !caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}
		}
		return false
	})
}

// EmitRows writes the dataset in the requested output format.
func EmitRows(rows []map[string]interface{}, format string, opts Options, w io.Writer) error {
	switch format {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal dataset: %w", err)
		}
		if _, err := w.Write(jsonOutput); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal dataset: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		RowsTable(rows, SuiteColumns, opts, w)
		return nil
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
