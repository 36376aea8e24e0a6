package interp

import (
	"io"
	"sprout/builtins"
	"sprout/trace"

	"github.com/oarkflow/log"
)

// ErrorPolicy decides what the program loop does with a failing line
type ErrorPolicy int

const (
	// AbortOnError stops the run and returns the first LineError
	AbortOnError ErrorPolicy = iota
	// SkipOnError logs the failure and continues with the next line
	SkipOnError
)

// String returns the policy name
func (p ErrorPolicy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipOnError:
		return "skip"
	default:
		return "unknown"
	}
}

// Options configures an Interpreter. Zero values select the defaults.
type Options struct {
	Out    io.Writer          // print sink; os.Stdout
	In     builtins.Prompter  // input source; a prompter over os.Stdin
	Policy ErrorPolicy        // AbortOnError
	Seed   int64              // random seed for meth; 0 seeds from the clock
	Logger *log.Logger        // log.DefaultLogger
	Tracer *trace.Tracer      // the global tracer
	Stmts  *builtins.Registry // builtins.NewRegistry()
}
