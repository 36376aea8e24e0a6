package interp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sprout/builtins"
	"sprout/eval"
	"sprout/trace"
	"sprout/types"
	"strings"
	"time"

	"github.com/oarkflow/log"
)

// Terminator is the line that closes the open conditional construct
const Terminator = ";"

// LineError is a failure of one source line
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error
func (e *LineError) Unwrap() error {
	return e.Err
}

// Interpreter runs Sprout programs. It owns the variable store and the
// block context for the duration of a run; neither is shared.
type Interpreter struct {
	eval   *eval.Evaluator
	stmts  *builtins.Registry
	ctx    *builtins.Context
	block  block
	line   int
	halted bool

	policy ErrorPolicy
	logger *log.Logger
	tracer *trace.Tracer
}

// New creates an interpreter. See Options for the defaults.
func New(opts Options) *Interpreter {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = NewReaderPrompter(os.Stdin, opts.Out)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = &log.DefaultLogger
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Global()
	}
	if opts.Stmts == nil {
		opts.Stmts = builtins.NewRegistry()
	}

	ev := eval.NewEvaluator()
	return &Interpreter{
		eval:  ev,
		stmts: opts.Stmts,
		ctx: &builtins.Context{
			Eval: ev,
			Out:  opts.Out,
			In:   opts.In,
			Rand: rand.New(rand.NewSource(opts.Seed)),
		},
		policy: opts.Policy,
		logger: opts.Logger,
		tracer: opts.Tracer,
	}
}

// Env returns the variable store
func (i *Interpreter) Env() *eval.Environment {
	return i.eval.Env()
}

// State returns the control-flow state
func (i *Interpreter) State() BlockState {
	return i.block.State()
}

// Halted reports whether a break statement stopped the program
func (i *Interpreter) Halted() bool {
	return i.halted
}

// Line returns the number of the last line processed
func (i *Interpreter) Line() int {
	return i.line
}

// Reset clears variables, the block context, the line counter and the
// halted flag
func (i *Interpreter) Reset() {
	i.Env().Reset()
	i.block.close()
	i.line = 0
	i.halted = false
}

// Run executes a program, one line at a time, in source order.
// Under AbortOnError the first failing line ends the run and its
// *LineError is returned. Under SkipOnError failures are logged and the
// run continues.
// Lines may be of any length.
func (i *Interpreter) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for !i.halted {
		text, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if text == "" && readErr != nil {
			return nil
		}

		if err := i.Exec(strings.TrimRight(text, "\r\n")); err != nil {
			if i.policy == AbortOnError {
				return err
			}
			i.logger.Warn().Err(err).Int("line", i.line).Msg("skipping failed line")
		}
		if readErr != nil {
			return nil
		}
	}
	return nil
}

// Exec processes the next source line: blank and comment lines are
// ignored, control lines drive the block context, anything else runs when
// the block context allows it.
func (i *Interpreter) Exec(text string) error {
	i.line++
	if i.halted {
		return nil
	}

	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "//") {
		return nil
	}

	if i.control(line) {
		return nil
	}

	keyword := i.keyword(line)
	if !i.block.runs() {
		i.tracer.Skip(i.line, keyword, line, i.block.State().String())
		return nil
	}

	i.tracer.Exec(i.line, keyword, line)
	if err := i.statement(line); err != nil {
		if errors.Is(err, builtins.ErrHalt) {
			i.halted = true
			return nil
		}
		i.tracer.Exception(i.line, keyword, line, err)
		return &LineError{Line: i.line, Text: line, Err: err}
	}
	return nil
}

// control handles if/elif/else and the terminator. It returns false for
// any other line.
func (i *Interpreter) control(line string) bool {
	if line == Terminator {
		i.block.close()
		i.tracer.Branch(i.line, Terminator, "", i.block.State().String())
		return true
	}

	if rest, ok := builtins.CutKeyword(line, "if"); ok {
		cond := conditionText(rest)
		i.block.openIf(i.condition("if", cond))
		i.tracer.Branch(i.line, "if", cond, i.block.State().String())
		return true
	}

	if rest, ok := builtins.CutKeyword(line, "elif"); ok {
		cond := conditionText(rest)
		i.block.elif(func() bool {
			return i.condition("elif", cond)
		})
		i.tracer.Branch(i.line, "elif", cond, i.block.State().String())
		return true
	}

	if line == "else" || line == "else:" {
		i.block.otherwise()
		i.tracer.Branch(i.line, "else", "", i.block.State().String())
		return true
	}

	return false
}

// condition evaluates a branch condition
func (i *Interpreter) condition(keyword, cond string) bool {
	if _, _, _, ok := eval.SplitCondition(cond); !ok {
		i.tracer.NoOperator(i.line, keyword, cond)
	}
	return i.eval.Condition(cond)
}

// statement runs a keyword statement or a plain assignment
func (i *Interpreter) statement(line string) error {
	handled, err := i.stmts.Dispatch(i.ctx, line)
	if handled {
		return err
	}

	name, expr, ok := strings.Cut(line, "=")
	if !ok {
		return types.NewError(types.E_PARSE, "unrecognized statement")
	}
	_, err = i.eval.Assign(name, expr)
	return err
}

// keyword names a line for tracing
func (i *Interpreter) keyword(line string) string {
	if keyword, _, ok := i.stmts.Match(line); ok {
		return keyword
	}
	if strings.Contains(line, "=") {
		return "assign"
	}
	return "unknown"
}

// conditionText extracts the condition from the text after if/elif:
// "(a < b)" or "(a < b):" becomes "a < b"
func conditionText(rest string) string {
	cond := strings.TrimSpace(rest)
	cond = strings.TrimSpace(strings.TrimSuffix(cond, ":"))
	if strings.HasPrefix(cond, "(") && strings.HasSuffix(cond, ")") {
		cond = cond[1 : len(cond)-1]
	}
	return strings.TrimSpace(cond)
}
