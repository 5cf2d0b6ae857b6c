package lantern

import (
	"errors"
)

var (
	// ErrUnboundVariable is returned when a symbol reference, or a set!
	// target, is not found in any frame of the environment chain.
	ErrUnboundVariable = errors.New("unbound variable")

	// ErrBadArity is returned on a parameter/argument count mismatch, or
	// on a malformed special-form pattern.
	ErrBadArity = errors.New("wrong number of arguments")

	// ErrNotCallable is returned when the head of an application form
	// does not evaluate to a procedure.
	ErrNotCallable = errors.New("not callable")
)
