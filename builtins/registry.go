package builtins

import (
	"errors"
	"sprout/types"
	"strings"
)

// StatementFunc handles one keyword statement. payload is the line text
// after the keyword, untrimmed.
type StatementFunc func(ctx *Context, payload string) error

// ErrHalt is returned by the break statement to stop the program
var ErrHalt = errors.New("halt")

// entry pairs a keyword with its handler
type entry struct {
	keyword string
	fn      StatementFunc
}

// Registry holds the keyword statements in match order
type Registry struct {
	entries []entry
	byName  map[string]int
}

// NewRegistry creates a registry with all Sprout statements registered
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]int),
	}

	// Declarations
	r.Register("int", stmtInt)
	r.Register("str", stmtStr)
	r.Register("float", stmtFloat)

	// I/O
	r.Register("print", stmtPrint)
	r.Register("input", stmtInput)

	// Math
	r.Register("pi", stmtPi)
	r.Register("meth", stmtMeth)

	// Program control
	r.Register("break", stmtBreak)

	return r
}

// Register adds a statement handler. Registering an existing keyword
// replaces its handler and keeps its position.
func (r *Registry) Register(keyword string, fn StatementFunc) {
	if idx, ok := r.byName[keyword]; ok {
		r.entries[idx].fn = fn
		return
	}
	r.byName[keyword] = len(r.entries)
	r.entries = append(r.entries, entry{keyword: keyword, fn: fn})
}

// Get retrieves a handler by keyword
// Returns (function, true) if found, (nil, false) if not found
func (r *Registry) Get(keyword string) (StatementFunc, bool) {
	idx, ok := r.byName[keyword]
	if !ok {
		return nil, false
	}
	return r.entries[idx].fn, true
}

// Has checks if a keyword is registered
func (r *Registry) Has(keyword string) bool {
	_, ok := r.byName[keyword]
	return ok
}

// Keywords returns the registered keywords in match order
func (r *Registry) Keywords() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.keyword
	}
	return out
}

// Match finds the first keyword, in registration order, that starts line
// as a whole word. It returns the keyword and the remaining payload.
func (r *Registry) Match(line string) (string, string, bool) {
	for _, e := range r.entries {
		if payload, ok := CutKeyword(line, e.keyword); ok {
			return e.keyword, payload, true
		}
	}
	return "", "", false
}

// Dispatch runs the statement that line starts with.
// handled is false when line does not start with a registered keyword.
func (r *Registry) Dispatch(ctx *Context, line string) (handled bool, err error) {
	keyword, payload, ok := r.Match(line)
	if !ok {
		return false, nil
	}
	fn, _ := r.Get(keyword)
	return true, fn(ctx, payload)
}

// CutKeyword reports whether line starts with keyword followed by end of
// line, whitespace, ':' or '(' and returns the text after the keyword.
func CutKeyword(line, keyword string) (string, bool) {
	if !strings.HasPrefix(line, keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	if rest == "" {
		return "", true
	}
	switch rest[0] {
	case ' ', '\t', ':', '(':
		return rest, true
	}
	return "", false
}

// payloadArgs strips the ':' separator from a statement payload and splits
// the rest on commas into n trimmed fields
func payloadArgs(payload string, n int) ([]string, error) {
	payload = colonPayload(payload)
	parts := strings.SplitN(payload, ",", n)
	if len(parts) != n {
		return nil, types.NewError(types.E_PARSE, "expected %d comma-separated arguments, got %q", n, payload)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// colonPayload trims a payload and removes one leading ':'
func colonPayload(payload string) string {
	payload = strings.TrimSpace(payload)
	payload = strings.TrimPrefix(payload, ":")
	return strings.TrimSpace(payload)
}
