package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReaderPrompter is a Prompter over plain streams: the prompt goes to the
// output followed by a space, and the reply is the next input line.
type ReaderPrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewReaderPrompter creates a prompter reading r and prompting on w
func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{r: bufio.NewReader(r), w: w}
}

// Prompt shows prompt and returns the next line without its line ending.
// io.EOF is returned only when no text is left.
func (p *ReaderPrompter) Prompt(prompt string) (string, error) {
	if p.w != nil {
		if _, err := fmt.Fprint(p.w, prompt+" "); err != nil {
			return "", err
		}
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
