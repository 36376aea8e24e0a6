package eval

import (
	"sprout/types"
	"strings"
)

// Evaluator reduces expression text against an Environment.
// It has no state of its own; every method reads or writes the environment.
type Evaluator struct {
	env *Environment
}

// NewEvaluator creates an evaluator over a fresh environment
func NewEvaluator() *Evaluator {
	return &Evaluator{env: NewEnvironment()}
}

// NewEvaluatorWithEnv creates an evaluator over the given environment
func NewEvaluatorWithEnv(env *Environment) *Evaluator {
	return &Evaluator{env: env}
}

// Env returns the environment the evaluator reads and writes
func (e *Evaluator) Env() *Environment {
	return e.env
}

// Assign implements plain assignment (name = expr).
// The current value decides the route: numeric values go through the
// arithmetic evaluator, text through the string combiner. Assigning to a
// name that does not exist fails with E_VARNF.
func (e *Evaluator) Assign(name, expr string) (types.Value, error) {
	name = strings.TrimSpace(name)
	current, err := e.env.Lookup(name)
	if err != nil {
		return nil, err
	}

	var result types.Value
	if types.IsNumeric(current) {
		f, err := e.Arith(expr)
		if err != nil {
			return nil, err
		}
		result = f
	} else {
		result = e.Combine(expr)
	}

	e.env.Set(name, result)
	return result, nil
}

// resolveText returns the textual value of a variable, or the token itself
// when no such variable exists
func (e *Evaluator) resolveText(tok string) (string, bool) {
	if val, ok := e.env.Get(tok); ok {
		return val.String(), true
	}
	return tok, false
}
