package builtins

import (
	"io"
	"math/rand"
	"sprout/eval"
)

// Prompter supplies a line of interactive input after showing a prompt.
// *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Context is what a statement handler may touch: the evaluator (and its
// environment), the output sink, the input source and the random source.
type Context struct {
	Eval *eval.Evaluator
	Out  io.Writer
	In   Prompter
	Rand *rand.Rand
}

// Env returns the variable store
func (c *Context) Env() *eval.Environment {
	return c.Eval.Env()
}
