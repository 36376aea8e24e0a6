package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sprout/interp"
	"sprout/source"
	"sprout/trace"
	"sprout/types"
	"strings"

	"github.com/oarkflow/log"
)

func main() {
	inline := flag.String("e", "", "Run inline Sprout source instead of a file")
	repl := flag.Bool("repl", false, "Start an interactive session")
	keepGoing := flag.Bool("keep-going", false, "Log failing lines and continue instead of stopping")
	seed := flag.Int64("seed", 0, "Random seed for meth (0 = from the clock)")
	dumpVars := flag.Bool("vars", false, "Print all variables when the program ends")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob over statement keywords, e.g. 'if,el*')")

	flag.Parse()

	logger := &log.DefaultLogger

	// Initialize tracer
	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
		logger.Info().Strs("filters", filters).Msg("tracing enabled")
	} else {
		trace.Init(false, nil, nil)
	}

	policy := interp.AbortOnError
	if *keepGoing {
		policy = interp.SkipOnError
	}

	opts := interp.Options{
		Out:    os.Stdout,
		Policy: policy,
		Seed:   *seed,
		Logger: logger,
	}
	if *repl {
		os.Exit(runRepl(opts))
	}

	in := newPrompter(stdinIsTerminal())
	opts.In = in

	var status int
	switch {
	case *inline != "":
		status = runSource(interp.New(opts), "<inline>", *inline, *dumpVars)
	default:
		prog, err := source.Load(source.Candidates(flag.Args()))
		if err != nil {
			if errors.Is(err, types.ErrSourceNotFound) {
				fmt.Fprintf(os.Stderr, "sprout: cannot open program: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "sprout: %v\n", err)
			}
			status = 1
			break
		}
		status = runSource(interp.New(opts), prog.Path, string(prog.Text), *dumpVars)
	}

	if tp, ok := in.(*termPrompter); ok {
		tp.Close()
	}
	os.Exit(status)
}

// runSource runs a whole program and reports a failure on stderr
func runSource(ip *interp.Interpreter, name, text string, dumpVars bool) int {
	err := ip.Run(strings.NewReader(text))
	if dumpVars {
		printVars(ip)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, failureMessage(name, err))
		return 1
	}
	return 0
}

// failureMessage formats a run failure for stderr:
// "sprout: <program>: line N: <text>: <error>"
func failureMessage(name string, err error) string {
	return fmt.Sprintf("sprout: %s: %v", name, err)
}

// printVars lists the variable store in name order
func printVars(ip *interp.Interpreter) {
	env := ip.Env()
	for _, name := range env.Names() {
		val, _ := env.Get(name)
		fmt.Printf("%-16s %-6s %s\n", name, val.Type(), val.String())
	}
}
