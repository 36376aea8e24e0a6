package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sprout/interp"
	"sprout/types"
	"strings"

	"github.com/oarkflow/log"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests, each with a fresh interpreter
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a runner whose skip-policy warnings are discarded
func NewRunner() *Runner {
	return &Runner{
		logger: &log.Logger{Writer: &log.IOWriter{Writer: io.Discard}},
	}
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

	policy, err := parsePolicy(test.Test.Policy)
	if err != nil {
		return TestResult{Test: test, Error: err}
	}

	seed := test.Test.Seed
	if seed == 0 {
		seed = 1
	}

	out := &bytes.Buffer{}
	input := strings.Join(test.Test.Input, "\n")
	ip := interp.New(interp.Options{
		Out:    out,
		In:     interp.NewReaderPrompter(strings.NewReader(input), out),
		Policy: policy,
		Seed:   seed,
		Logger: r.logger,
	})
	runErr := ip.Run(strings.NewReader(test.Test.Program))

	passed, err := r.checkExpectation(test.Test, ip, out.String(), runErr)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
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

func parsePolicy(name string) (interp.ErrorPolicy, error) {
	switch strings.ToLower(name) {
	case "", "abort":
		return interp.AbortOnError, nil
	case "skip":
		return interp.SkipOnError, nil
	default:
		return 0, fmt.Errorf("unknown error policy: %s", name)
	}
}

// checkExpectation checks the run against every expectation that is set
func (r *Runner) checkExpectation(test TestCase, ip *interp.Interpreter, output string, runErr error) (bool, error) {
	expect := test.Expect
	if expect.IsEmpty() {
		return false, fmt.Errorf("no expectation specified")
	}

	// Check for expected error
	if expect.Error != "" {
		expectedCode, ok := types.ErrorFromString(strings.ToUpper(expect.Error))
		if !ok {
			return false, fmt.Errorf("unknown error code: %s", expect.Error)
		}
		if runErr == nil {
			return false, fmt.Errorf("expected error %s, program completed", expect.Error)
		}
		var serr *types.Error
		if !errors.As(runErr, &serr) {
			return false, fmt.Errorf("expected error %s, got %v", expect.Error, runErr)
		}
		if serr.Code != expectedCode {
			return false, fmt.Errorf("expected error %s, got %s", expect.Error, serr.Code)
		}
		if expect.Line != 0 {
			var lerr *interp.LineError
			if !errors.As(runErr, &lerr) || lerr.Line != expect.Line {
				return false, fmt.Errorf("expected error on line %d, got %v", expect.Line, runErr)
			}
		}
	} else if runErr != nil {
		return false, fmt.Errorf("unexpected error: %w", runErr)
	}

	if expect.Output != nil && output != *expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", *expect.Output, output)
	}

	for _, want := range expect.Contains {
		if !strings.Contains(output, want) {
			return false, fmt.Errorf("expected output to contain %q, got %q", want, output)
		}
	}

	for name, raw := range expect.Variables {
		expected, err := convertYAMLValue(raw)
		if err != nil {
			return false, fmt.Errorf("variable %s: %w", name, err)
		}
		actual, ok := ip.Env().Get(name)
		if !ok {
			return false, fmt.Errorf("expected variable %s = %v, not defined", name, expected)
		}
		if !actual.Equal(expected) {
			return false, fmt.Errorf("expected %s = %v (%s), got %v (%s)",
				name, expected, expected.Type(), actual, actual.Type())
		}
	}

	return true, nil
}

// convertYAMLValue converts a YAML scalar to a Sprout Value.
// YAML integers become Integer, YAML floats Float, strings Text.
func convertYAMLValue(v interface{}) (types.Value, error) {
	switch val := v.(type) {
	case int:
		return types.NewInt(int64(val)), nil
	case int64:
		return types.NewInt(val), nil
	case float64:
		return types.NewFloat(val), nil
	case string:
		return types.NewStr(val), nil
	default:
		return nil, fmt.Errorf("unsupported YAML type: %T", v)
	}
}
