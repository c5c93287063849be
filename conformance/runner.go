package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"miniscript/program"
	"miniscript/runtime"
	"miniscript/types"
	"strings"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// outcome is what a program run produced
type outcome struct {
	stdout string
	stderr string
	status int
	err    error
	env    *program.Environment
}

// Runner executes conformance tests
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	prog := &program.Program{Name: test.Test.Name, Steps: test.Test.Steps}
	if err := prog.Validate(); err != nil {
		return TestResult{
			Test:   test,
			Passed: false,
			Error:  fmt.Errorf("invalid test program: %w", err),
		}
	}

	out := r.execute(test.Test, prog)
	passed, err := r.checkExpectation(test.Test, out)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// execute runs prog on a fresh runtime with captured streams.
// A runtime error goes through the fatal path exactly as in a real run.
func (r *Runner) execute(test TestCase, prog *program.Program) outcome {
	var stdout, stderr bytes.Buffer
	status := runtime.ExitOK

	rt := runtime.New(&stdout, &stderr)
	rt.SetExit(func(code int) { status = code })
	if test.MaxStringConcat != 0 {
		rt.SetMaxStringConcat(test.MaxStringConcat)
	}

	env, err := program.Exec(rt, prog)
	if err != nil {
		rt.Fatal(err)
	}

	return outcome{
		stdout: stdout.String(),
		stderr: stderr.String(),
		status: status,
		err:    err,
		env:    env,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, r.Run(test))
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks if the run matches the expected outcome
func (r *Runner) checkExpectation(test TestCase, out outcome) (bool, error) {
	expect := test.Expect

	if expect.Output == nil && expect.Error == "" && expect.Type == "" && expect.Exit == nil {
		return false, fmt.Errorf("no expectation specified")
	}

	if expect.Output != nil && out.stdout != *expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", *expect.Output, out.stdout)
	}

	wantStatus := runtime.ExitOK
	if expect.Error != "" {
		wantStatus = runtime.ExitFatal
	}
	if expect.Exit != nil {
		wantStatus = *expect.Exit
	}
	if out.status != wantStatus {
		return false, fmt.Errorf("expected exit status %d, got %d (stderr %q)", wantStatus, out.status, out.stderr)
	}

	if expect.Error != "" {
		expectedErr, ok := types.ErrorFromString(strings.ToUpper(expect.Error))
		if !ok {
			return false, fmt.Errorf("unknown error code: %s", expect.Error)
		}

		var rerr *runtime.RuntimeError
		if !errors.As(out.err, &rerr) {
			return false, fmt.Errorf("expected error %s, got %v", expect.Error, out.err)
		}
		if rerr.Code != expectedErr {
			return false, fmt.Errorf("expected error %s, got %s", expect.Error, rerr.Code)
		}
		if !strings.HasPrefix(out.stderr, "fatal: ") {
			return false, fmt.Errorf("fatal error not reported on stderr: %q", out.stderr)
		}
		return true, nil
	}

	if out.err != nil {
		return false, fmt.Errorf("unexpected error: %v", out.err)
	}

	if expect.Type != "" {
		expectedType, ok := typeNameToCode(expect.Type)
		if !ok {
			return false, fmt.Errorf("unknown type: %s", expect.Type)
		}

		name := test.lastBinding()
		val, found := out.env.Get(name)
		if !found {
			return false, fmt.Errorf("expected type %s, but no variable was bound", expect.Type)
		}
		if val.Type() != expectedType {
			return false, fmt.Errorf("expected type %s, got %s", expect.Type, typeCodeToName(val.Type()))
		}
	}

	return true, nil
}

// typeNameToCode converts type name to TypeCode
func typeNameToCode(name string) (types.TypeCode, bool) {
	switch strings.ToLower(name) {
	case "int":
		return types.TYPE_INT, true
	case "float":
		return types.TYPE_FLOAT, true
	case "str":
		return types.TYPE_STR, true
	case "bool":
		return types.TYPE_BOOL, true
	case "nil":
		return types.TYPE_NIL, true
	default:
		return 0, false
	}
}

// typeCodeToName converts TypeCode to name
func typeCodeToName(code types.TypeCode) string {
	return strings.ToLower(code.String())
}
