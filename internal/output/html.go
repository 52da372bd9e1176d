// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/junitdiff/junitdiff/internal/differ"
)

// The report layout mirrors the historical surefire diff page: one rowspanned
// cell per baseline suite, a row per case with the match symbol and both
// outcomes, and a two-row summary block with differing counters in red.
const htmlReport = `<!DOCTYPE html>
<html>
<head><title>Diff Result</title></head>
<body>
<p>{{banner .Passed}}</p>
<div><table border="1px solid">
<tr style="background:#c9c8c8;"><th rowspan="2">Junit 4 Test Class</th><th rowspan="2">Junit 4 Test Cases</th><th colspan="3">Diff Result</th></tr>
<tr style="background:#c9c8c8;"><th>result</th><th>Junit 4</th><th>Junit 5</th></tr>
{{range $s := .Suites}}{{if $s.Lost}}<tr><td>{{$s.Name}}</td><td colspan="4" style="background:#ff7575;">Junit 4 Test lost.</td></tr>
{{else}}{{range $i, $c := $s.Cases}}<tr>{{if eq $i 0}}<td rowspan="{{rowspan $s}}">{{$s.Name}}</td>{{end}}<td>{{$c.Name}}</td>{{resultCells $c}}</tr>
{{end}}<tr>{{if not $s.Cases}}<td rowspan="2">{{$s.Name}}</td>{{end}}<td rowspan="2" style="font-weight:900;background:{{summaryColor $s.Summary}};">Summary</td><td colspan="3">Junit 4: {{$s.Summary.Before.Summary}}</td></tr>
<tr><td colspan="3">Junit 5: Total {{counter $s.Summary.After.Tests $s.Summary.TestsDiffer}}, Failures {{counter $s.Summary.After.Failures $s.Summary.FailuresDiffer}}, Errors {{counter $s.Summary.After.Errors $s.Summary.ErrorsDiffer}}, Skipped {{counter $s.Summary.After.Skipped $s.Summary.SkippedDiffer}}</td></tr>
{{end}}{{end}}</table></div>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"banner":       banner,
	"rowspan":      rowspan,
	"resultCells":  resultCells,
	"summaryColor": summaryColor,
	"counter":      counter,
}).Parse(htmlReport))

// WriteHTML renders the diff result as the HTML report.
func WriteHTML(result *differ.Result, w io.Writer) error {
	return reportTemplate.Execute(w, result)
}

// SaveHTML writes the HTML report to path. The file handle is released on
// every exit path.
func SaveHTML(result *differ.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create html report: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := WriteHTML(result, f); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}

	log.Debugf("html report written: path=%s", path)
	return f.Close()
}

func banner(passed bool) template.HTML {
	if passed {
		return `Final Diff Result : <span style="color:green;">PASS</span>`
	}
	return `Final Diff Result : <span style="color:red;">FAIL</span>`
}

// rowspan covers the case rows plus the two summary rows.
func rowspan(s differ.SuiteDiff) int {
	return len(s.Cases) + 2
}

func resultCells(c differ.CaseDiff) template.HTML {
	switch {
	case c.Lost:
		return `<td colspan="3" style="background:#ff7575;">Junit 4 test case lost.</td>`
	case c.Matched:
		return template.HTML(fmt.Sprintf(
			`<td style="color:green;">O</td><td>%s</td><td>%s</td>`,
			template.HTMLEscapeString(string(c.Before)),
			template.HTMLEscapeString(string(c.After))))
	default:
		return template.HTML(fmt.Sprintf(
			`<td style="background:#ff7575;">X (Test status does not match.)</td><td>%s</td><td>%s</td>`,
			template.HTMLEscapeString(string(c.Before)),
			template.HTMLEscapeString(string(c.After))))
	}
}

func summaryColor(s *differ.SummaryDiff) string {
	if s != nil && !s.Matched {
		return "#ff7575"
	}
	return "#dddddd"
}

func counter(n int, differs bool) template.HTML {
	if differs {
		return template.HTML(fmt.Sprintf(`<span style="color:red;">%d</span>`, n))
	}
	return template.HTML(fmt.Sprintf("%d", n))
}
