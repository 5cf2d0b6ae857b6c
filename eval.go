package lantern

import (
	"fmt"

	"github.com/Techdojo/Lantern/ast"
	"github.com/Techdojo/Lantern/parser"
)

// Eval evaluates an expression against an environment. It is a plain
// recursive tree-walk: call depth grows with expression nesting and with
// user-defined procedure recursion (there is no tail-call elimination), so
// a deeply recursive program can exhaust the stack. Errors abort the
// current evaluation and unwind to the caller.
func Eval(node *ast.Node, env *Env) (*Value, error) {
	switch node.Type() {
	case ast.NodeTypeSymbol:
		return env.Get(node.Symbol())

	case ast.NodeTypeInt:
		return NewIntValue(node.Int()), nil

	case ast.NodeTypeFloat:
		return NewFloatValue(node.Float()), nil
	}

	items := node.List()

	if len(items) > 0 && items[0].Type() == ast.NodeTypeSymbol {
		switch items[0].Symbol() {

		case "quote":
			if len(items) != 2 {
				return nil, formError("(quote expr)")
			}
			return quoteValue(items[1]), nil

		case "if":
			if len(items) != 4 {
				return nil, formError("(if test conseq alt)")
			}
			test, err := Eval(items[1], env)
			if err != nil {
				return nil, err
			}
			if test.IsTruthy() {
				return Eval(items[2], env)
			}
			return Eval(items[3], env)

		case "define":
			if len(items) != 3 || items[1].Type() != ast.NodeTypeSymbol {
				return nil, formError("(define name expr)")
			}
			value, err := Eval(items[2], env)
			if err != nil {
				return nil, err
			}
			env.Define(items[1].Symbol(), value)
			return Nil, nil

		case "set!":
			if len(items) != 3 || items[1].Type() != ast.NodeTypeSymbol {
				return nil, formError("(set! name expr)")
			}
			value, err := Eval(items[2], env)
			if err != nil {
				return nil, err
			}
			if err := env.Set(items[1].Symbol(), value); err != nil {
				return nil, err
			}
			return Nil, nil

		case "lambda":
			if len(items) != 3 {
				return nil, formError("(lambda (params) body)")
			}
			params, err := lambdaParams(items[1])
			if err != nil {
				return nil, err
			}
			return newLambdaValue(&Lambda{
				params: params,
				body:   items[2],
				env:    env,
			}), nil
		}
	}

	// procedure application
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty form", ErrNotCallable)
	}

	fn, err := Eval(items[0], env)
	if err != nil {
		return nil, err
	}

	args := make([]*Value, 0, len(items)-1)
	for _, item := range items[1:] {
		arg, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return Apply(fn, args)
}

// Apply invokes a procedure on already-evaluated arguments. A lambda runs
// its body in a fresh frame binding parameters to arguments, chained to
// the environment the lambda captured at creation.
func Apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.Type {
	case ValueTypeBuiltin:
		return fn.Builtin()(args)

	case ValueTypeLambda:
		l := fn.Lambda()
		callEnv, err := NewCallEnv(l.params, args, l.env)
		if err != nil {
			return nil, err
		}
		return Eval(l.body, callEnv)
	}

	return nil, fmt.Errorf("%w: %s", ErrNotCallable, fn)
}

// EvalString reads the first expression in src and evaluates it against
// env. Trailing input is ignored.
func EvalString(src string, env *Env) (*Value, error) {
	node, err := parser.Read([]byte(src))
	if err != nil {
		return nil, err
	}
	return Eval(node, env)
}

func formError(want string) error {
	return fmt.Errorf("%w: expected %s", ErrBadArity, want)
}

func lambdaParams(node *ast.Node) ([]string, error) {
	if !node.IsList() {
		return nil, formError("(lambda (params) body)")
	}
	items := node.List()
	params := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type() != ast.NodeTypeSymbol {
			return nil, formError("(lambda (params) body)")
		}
		params = append(params, item.Symbol())
	}
	return params, nil
}

// quoteValue converts an expression into the value it denotes, without
// evaluating anything: symbols stay symbols and lists stay lists.
func quoteValue(node *ast.Node) *Value {
	switch node.Type() {
	case ast.NodeTypeInt:
		return NewIntValue(node.Int())
	case ast.NodeTypeFloat:
		return NewFloatValue(node.Float())
	case ast.NodeTypeSymbol:
		return NewSymbolValue(node.Symbol())
	}

	items := node.List()
	values := make([]*Value, 0, len(items))
	for _, item := range items {
		values = append(values, quoteValue(item))
	}
	return NewListValue(values)
}
