package lantern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Techdojo/Lantern/parser"
)

func evalOK(t *testing.T, env *Env, src string) *Value {
	t.Helper()

	value, err := EvalString(src, env)
	if !assert.NoError(t, err, src) {
		return Nil
	}
	return value
}

func TestSelfEvaluation(t *testing.T) {
	env := NewGlobalEnv()

	value := evalOK(t, env, `5`)
	assert.Equal(t, ValueTypeInt, value.Type)
	assert.Equal(t, int64(5), value.Int())

	value = evalOK(t, env, `3.5`)
	assert.Equal(t, ValueTypeFloat, value.Type)
	assert.Equal(t, 3.5, value.Float64())
}

func TestQuote(t *testing.T) {
	env := NewGlobalEnv()

	value := evalOK(t, env, `(quote (1 2 3))`)
	assert.Equal(t, ValueTypeList, value.Type)
	assert.Equal(t, "(1 2 3)", value.String())

	// quoted symbols are not looked up
	value = evalOK(t, env, `(quote (some unbound names))`)
	assert.Equal(t, "(some unbound names)", value.String())

	value = evalOK(t, env, `(quote x)`)
	assert.Equal(t, ValueTypeSymbol, value.Type)
	assert.Equal(t, "x", value.Symbol())
}

func TestDefineLookup(t *testing.T) {
	env := NewGlobalEnv()

	value := evalOK(t, env, `(define x 5)`)
	assert.True(t, value.IsNil())

	value = evalOK(t, env, `x`)
	assert.Equal(t, int64(5), value.Int())

	// define overwrites in the same frame
	evalOK(t, env, `(define x 7)`)
	value = evalOK(t, env, `x`)
	assert.Equal(t, int64(7), value.Int())
}

func TestIfSelectsOneBranch(t *testing.T) {
	env := NewGlobalEnv()

	touched := 0
	env.Define("touch", NewBuiltinValue("touch", func(args []*Value) (*Value, error) {
		touched++
		return Nil, nil
	}))

	value := evalOK(t, env, `(if (> 3 2) 1 (touch))`)
	assert.Equal(t, int64(1), value.Int())
	assert.Equal(t, 0, touched)

	value = evalOK(t, env, `(if (> 2 3) (touch) 2)`)
	assert.Equal(t, int64(2), value.Int())
	assert.Equal(t, 0, touched)

	evalOK(t, env, `(if 0 (touch) 3)`)
	assert.Equal(t, 0, touched)

	evalOK(t, env, `(if (quote (1)) (touch) 3)`)
	assert.Equal(t, 1, touched)
}

func TestClosureCapture(t *testing.T) {
	env := NewGlobalEnv()

	evalOK(t, env, `(define add (lambda (a b) (+ a b)))`)

	value := evalOK(t, env, `(add 2 3)`)
	assert.Equal(t, int64(5), value.Int())

	// a nested lambda keeps its defining call frame alive
	evalOK(t, env, `(define make-adder (lambda (n) (lambda (x) (+ x n))))`)
	evalOK(t, env, `(define add3 (make-adder 3))`)

	value = evalOK(t, env, `(add3 4)`)
	assert.Equal(t, int64(7), value.Int())
}

func TestParameterShadowing(t *testing.T) {
	env := NewGlobalEnv()

	evalOK(t, env, `(define x 1)`)
	evalOK(t, env, `(define f (lambda (x) x))`)

	value := evalOK(t, env, `(f 99)`)
	assert.Equal(t, int64(99), value.Int())

	// the call frame is gone, the outer binding is untouched
	value = evalOK(t, env, `x`)
	assert.Equal(t, int64(1), value.Int())
}

func TestSetMutatesDefiningScope(t *testing.T) {
	env := NewGlobalEnv()

	evalOK(t, env, `(define x 1)`)
	evalOK(t, env, `(define f (lambda () (set! x 2)))`)
	evalOK(t, env, `(f)`)

	value := evalOK(t, env, `x`)
	assert.Equal(t, int64(2), value.Int())
}

func TestUnboundVariable(t *testing.T) {
	env := NewGlobalEnv()

	_, err := EvalString(`undefined-name`, env)
	assert.ErrorIs(t, err, ErrUnboundVariable)

	_, err = EvalString(`(set! never-defined 1)`, env)
	assert.ErrorIs(t, err, ErrUnboundVariable)
}

func TestArityMismatch(t *testing.T) {
	env := NewGlobalEnv()

	evalOK(t, env, `(define f (lambda (a b) (+ a b)))`)

	_, err := EvalString(`(f 1)`, env)
	assert.ErrorIs(t, err, ErrBadArity)

	_, err = EvalString(`(f 1 2 3)`, env)
	assert.ErrorIs(t, err, ErrBadArity)
}

func TestNotCallable(t *testing.T) {
	env := NewGlobalEnv()

	_, err := EvalString(`(1 2 3)`, env)
	assert.ErrorIs(t, err, ErrNotCallable)

	_, err = EvalString(`()`, env)
	assert.ErrorIs(t, err, ErrNotCallable)

	evalOK(t, env, `(define x 5)`)
	_, err = EvalString(`(x 1)`, env)
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestMalformedSpecialForms(t *testing.T) {
	env := NewGlobalEnv()

	testCases := []string{
		`(quote)`,
		`(quote 1 2)`,
		`(if 1 2)`,
		`(if 1 2 3 4)`,
		`(define 3 4)`,
		`(define x)`,
		`(set! 3 4)`,
		`(lambda (a))`,
		`(lambda x x)`,
		`(lambda (a 1) a)`,
	}

	for _, src := range testCases {
		_, err := EvalString(src, env)
		assert.ErrorIs(t, err, ErrBadArity, src)
	}
}

func TestSpecialFormNamesAreNotReservedValues(t *testing.T) {
	env := NewGlobalEnv()

	// a head position that is not a symbol still goes through application
	value := evalOK(t, env, `((lambda (a) (* a a)) 9)`)
	assert.Equal(t, int64(81), value.Int())
}

func TestCircleArea(t *testing.T) {
	env := NewGlobalEnv()

	value := evalOK(t, env, `(begin
		(define circle-area (lambda (r) (* pi (* r r))))
		(circle-area 10))`)

	assert.Equal(t, ValueTypeFloat, value.Type)
	assert.InDelta(t, 314.159265358979, value.Float64(), 1e-9)
}

func TestEvalStringIgnoresTrailingInput(t *testing.T) {
	env := NewGlobalEnv()

	value := evalOK(t, env, `(+ 1 2) (this is never read`)
	assert.Equal(t, int64(3), value.Int())
}

func TestEvalStringSyntaxErrors(t *testing.T) {
	env := NewGlobalEnv()

	_, err := EvalString(`(+ 1 2`, env)
	assert.ErrorIs(t, err, parser.ErrUnexpectedEOF)

	_, err = EvalString(`)`, env)
	assert.ErrorIs(t, err, parser.ErrUnexpectedCloseParen)
}
