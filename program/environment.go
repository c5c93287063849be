package program

import (
	"miniscript/types"
	"sort"
)

// Environment manages variable bindings for a program run.
// Programs have no functions, so there is a single flat scope.
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

// Set assigns a value to a variable, creating it if it doesn't exist.
// The previous value, if any, is dropped.
func (e *Environment) Set(name string, value types.Value) {
	e.vars[name] = value
}

// Names returns the bound variable names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
