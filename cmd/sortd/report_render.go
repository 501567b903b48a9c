package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"sortd/internal/catalog"
	"sortd/internal/executor"
	"sortd/internal/organize"
	"sortd/internal/planner"
)

func renderReport(out io.Writer, result *organize.Result) {
	report := result.Report
	fmt.Fprintln(out, organize.Describe(report))

	rows := [][]string{
		{"moved", strconv.Itoa(report.Moved)},
		{"renamed", strconv.Itoa(report.Renamed)},
		{"duplicates skipped", strconv.Itoa(report.Duplicates)},
		{"unmapped skipped", strconv.Itoa(report.Unmapped)},
		{"failed", strconv.Itoa(report.Failed)},
	}
	fmt.Fprintln(out, renderTable([]string{"Outcome", "Files"}, rows, 2))

	renderFailures(out, report)
}

func renderFailures(out io.Writer, report *executor.Report) {
	if len(report.Failures) == 0 {
		return
	}
	rows := make([][]string, 0, len(report.Failures))
	for _, failure := range report.Failures {
		rows = append(rows, []string{failure.Source, failure.Reason})
	}
	fmt.Fprintln(out, renderTable([]string{"Failed File", "Reason"}, rows))
}

// renderPlan lists every planned action; dry runs use it to show what an
// apply run would do.
func renderPlan(out io.Writer, plan *planner.Plan) {
	rows := make([][]string, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		detail := action.Destination
		switch action.Kind {
		case planner.ActionSkipDuplicate:
			detail = "duplicate of " + action.Existing
		case planner.ActionSkipUnmapped:
			if action.Extension == catalog.NoExtension {
				detail = "no extension mapped"
			} else {
				detail = "no category for ." + action.Extension
			}
		case planner.ActionSkipError:
			detail = action.Reason
		}
		rows = append(rows, []string{action.Kind.String(), action.Source, detail})
	}
	fmt.Fprintln(out, renderTable([]string{"Action", "Source", "Detail"}, rows))
}

func renderUnmapped(out io.Writer, unmapped map[string]int) {
	if len(unmapped) == 0 {
		return
	}
	exts := make([]string, 0, len(unmapped))
	for ext := range unmapped {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	rows := make([][]string, 0, len(exts))
	for _, ext := range exts {
		label := ext
		if label == catalog.NoExtension {
			label = "(no extension)"
		}
		rows = append(rows, []string{label, strconv.Itoa(unmapped[ext])})
	}
	fmt.Fprintln(out, "Extensions without a category:")
	fmt.Fprintln(out, renderTable([]string{"Extension", "Files"}, rows, 2))
}
