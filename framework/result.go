package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Failed  bool
	Skipped bool
	// Group is true for a test that ran subtests. A group is only reported as failed if it
	// failed itself, so it is not counted as a pass either.
	Group   bool
	Issue   string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that passed, failed and were skipped. Groups count only
// when they failed or were skipped themselves.
func (r Results) Counts() (passed, failed, skipped int) {
	for _, t := range r.Tests {
		switch {
		case t.Failed:
			failed++
		case t.Skipped:
			skipped++
		case !t.Group:
			passed++
		}
	}
	return
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func (t TestID) IsRoot() bool {
	return len(t.Path) == 0
}

// Plus returns the ID of a subtest. The receiver's path is copied so that sibling IDs never
// share a backing array.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

// PrintResults writes a summary of the test run, listing each failed test.
func PrintResults(out io.Writer, results Results) {
	passed, failed, skipped := results.Counts()
	if results.OK() {
		color.New(color.FgGreen).Fprintf(out, "All tests passed")
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(out, "%d test(s) failed", failed)
	}
	fmt.Fprintf(out, " (passed: %d, failed: %d, skipped: %d)\n", passed, failed, skipped)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  FAILED: %s\n", f.TestID)
		if f.Issue != "" {
			fmt.Fprintf(out, "    known issue: %s\n", f.Issue)
		}
	}
}
