package main

import (
	"os"
	"sprout/builtins"
	"sprout/interp"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// termPrompter answers input statements through liner. The terminal
// switches to raw mode on the first prompt, not before.
type termPrompter struct {
	ln    *liner.State
	owned bool
}

// Prompt shows prompt followed by a space and reads one line
func (p *termPrompter) Prompt(prompt string) (string, error) {
	if p.ln == nil {
		p.ln = liner.NewLiner()
		p.ln.SetCtrlCAborts(true)
		p.owned = true
	}
	return p.ln.Prompt(promptText(prompt))
}

// Close restores the terminal if this prompter opened it
func (p *termPrompter) Close() {
	if p.owned && p.ln != nil {
		p.ln.Close()
		p.ln = nil
	}
}

// promptText is the text shown for an input statement
func promptText(prompt string) string {
	return prompt + " "
}

// newPrompter picks the input source for a program run: liner on a
// terminal, plain line reads otherwise
func newPrompter(tty bool) builtins.Prompter {
	if tty {
		return &termPrompter{}
	}
	return interp.NewReaderPrompter(os.Stdin, os.Stdout)
}

// stdinIsTerminal reports whether stdin is an interactive terminal
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
