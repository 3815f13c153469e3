package framework

import (
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a one-line tally followed by the errors of every failed test.
func PrintResults(w io.Writer, results Results) {
	passed := len(results.Tests) - len(results.Failures)
	fmt.Fprintf(w, "%d passed, %d failed, %d skipped\n", passed, len(results.Failures), len(results.Skipped))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  FAILED: %s\n", f.TestID)
		for _, err := range f.Errors {
			fmt.Fprintf(w, "    %s\n", TestFailure{ID: f.TestID, Err: err})
		}
	}
}
