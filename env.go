package lantern

import (
	"fmt"
)

// Env is one frame of the lexical scope chain: a name-to-value table plus
// an optional outer frame. A frame does not own its outer frame; the root
// environment outlives every frame created against it, and a call frame
// stays reachable only while the call runs or a lambda captured it.
type Env struct {
	store map[string]*Value
	outer *Env
}

// NewEnv creates an empty frame on top of outer. Pass nil for a root
// frame.
func NewEnv(outer *Env) *Env {
	return &Env{
		store: map[string]*Value{},
		outer: outer,
	}
}

// NewCallEnv creates the frame for a procedure call, binding parameter
// names to argument values positionally. A count mismatch fails with
// ErrBadArity.
func NewCallEnv(params []string, args []*Value, outer *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArity, len(params), len(args))
	}
	env := NewEnv(outer)
	for i := range params {
		env.store[params[i]] = args[i]
	}
	return env, nil
}

// Find returns the innermost frame in the chain that contains name,
// searching the current frame first and then each outer frame in order.
func (e *Env) Find(name string) (*Env, error) {
	for s := e; s != nil; s = s.outer {
		if _, ok := s.store[name]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnboundVariable, name)
}

// Get reads the binding for name from the innermost frame containing it.
func (e *Env) Get(name string) (*Value, error) {
	s, err := e.Find(name)
	if err != nil {
		return nil, err
	}
	return s.store[name], nil
}

// Set mutates the binding for name in the innermost frame containing it.
// It never creates a binding.
func (e *Env) Set(name string, value *Value) error {
	s, err := e.Find(name)
	if err != nil {
		return err
	}
	s.store[name] = value
	return nil
}

// Define inserts or overwrites a binding in this frame only, never in an
// outer one.
func (e *Env) Define(name string, value *Value) {
	e.store[name] = value
}
