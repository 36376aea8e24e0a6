package eval

import (
	"sort"
	"sprout/types"
)

// Environment is the variable store of a single program run.
// Names are case-sensitive. A variable's declared type is not enforced
// after creation; Set overwrites whatever is stored.
type Environment struct {
	vars map[string]types.Value
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{
		vars: make(map[string]types.Value),
	}
}

// Get looks up a variable by name
// Returns (value, true) if found, (nil, false) if not found
func (e *Environment) Get(name string) (types.Value, bool) {
	val, ok := e.vars[name]
	return val, ok
}

// Lookup is Get with an E_VARNF error for absent names
func (e *Environment) Lookup(name string) (types.Value, error) {
	val, ok := e.vars[name]
	if !ok {
		return nil, types.Undefined(name)
	}
	return val, nil
}

// Set assigns a value to a variable, creating it if it doesn't exist
func (e *Environment) Set(name string, value types.Value) {
	e.vars[name] = value
}

// Has reports whether a variable exists
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Len returns the number of variables
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the variable names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset removes every variable
func (e *Environment) Reset() {
	e.vars = make(map[string]types.Value)
}
