package main

import (
	"fmt"

	"github.com/classlens/classlens/diag"
)

// diagnosticsError reports that a reader result carried at least one issue
// of severity Error or worse. Its one-line Error() is what gets printed by
// default; %+v prints every collected issue, for --debug.
type diagnosticsError struct {
	sourceName string
	result     diag.Result
}

func newDiagnosticsError(sourceName string, result diag.Result) error {
	return &diagnosticsError{sourceName: sourceName, result: result}
}

func (e *diagnosticsError) Error() string {
	worst := diag.Hint
	count := 0
	for _, issue := range e.result.Issues() {
		if issue.Severity().IsFailure() {
			count++
			if issue.Severity() < worst {
				worst = issue.Severity()
			}
		}
	}
	return fmt.Sprintf("%s: %d diagnostic issue(s), highest severity %s", e.sourceName, count, worst)
}

func (e *diagnosticsError) Format(f fmt.State, verb rune) {
	if verb != 'v' || !f.Flag('+') {
		fmt.Fprint(f, e.Error())
		return
	}
	fmt.Fprintf(f, "%s:\n", e.sourceName)
	for _, issue := range e.result.Issues() {
		fmt.Fprintf(f, "  %s [%s] %s", issue.Severity(), issue.Code().String(), issue.Message())
		if hint := issue.Hint(); hint != "" {
			fmt.Fprintf(f, " (%s)", hint)
		}
		fmt.Fprintln(f)
	}
}
