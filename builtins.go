package lantern

import (
	"fmt"
	"math"
)

// NewGlobalEnv builds a fresh root environment seeded with the standard
// library. Every call returns an independent session; callers decide
// whether to share state by sharing the returned environment — there is
// no process-wide default.
func NewGlobalEnv() *Env {
	env := NewEnv(nil)
	for name, fn := range builtins {
		env.Define(name, NewBuiltinValue(name, fn))
	}
	env.Define("pi", NewFloatValue(math.Pi))
	env.Define("e", NewFloatValue(math.E))
	return env
}

var builtins = map[string]Builtin{
	"+": foldNumeric("+",
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b }),
	"-": foldNumeric("-",
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b }),
	"*": foldNumeric("*",
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b }),
	"/": divide,

	">":  compareNumeric(">", func(a, b float64) bool { return a > b }),
	"<":  compareNumeric("<", func(a, b float64) bool { return a < b }),
	">=": compareNumeric(">=", func(a, b float64) bool { return a >= b }),
	"<=": compareNumeric("<=", func(a, b float64) bool { return a <= b }),
	"=":  equal,

	"car":    car,
	"cdr":    cdr,
	"cons":   cons,
	"list":   list,
	"append": appendLists,
	"length": length,
	"null?":  isNull,

	"number?":    predicate("number?", func(v *Value) bool { return v.IsNumber() }),
	"symbol?":    predicate("symbol?", func(v *Value) bool { return v.Type == ValueTypeSymbol }),
	"list?":      predicate("list?", func(v *Value) bool { return v.Type == ValueTypeList }),
	"procedure?": predicate("procedure?", func(v *Value) bool { return v.IsCallable() }),

	"begin": begin,
	"not":   not,
	"abs":   abs,
	"max": foldNumeric("max",
		func(a, b int64) int64 { return max(a, b) },
		math.Max),
	"min": foldNumeric("min",
		func(a, b int64) int64 { return min(a, b) },
		math.Min),
	"round": round,

	"sqrt": mathUnary("sqrt", math.Sqrt),
	"sin":  mathUnary("sin", math.Sin),
	"cos":  mathUnary("cos", math.Cos),
	"exp":  mathUnary("exp", math.Exp),
	"log":  mathUnary("log", math.Log),
	"pow":  pow,
}

func arityError(name string, want string, got int) error {
	return fmt.Errorf("%w: %s takes %s arguments, got %d", ErrBadArity, name, want, got)
}

func typeError(name string, v *Value) error {
	return fmt.Errorf("%s: unexpected argument %s", name, v)
}

func wantNumbers(name string, args []*Value) error {
	for _, arg := range args {
		if !arg.IsNumber() {
			return typeError(name, arg)
		}
	}
	return nil
}

func wantList(name string, v *Value) ([]*Value, error) {
	if v.Type != ValueTypeList {
		return nil, typeError(name, v)
	}
	return v.List(), nil
}

// boolValue renders a predicate result. The language has no boolean type:
// 1 and 0 compose with the conditional's truthiness rule instead.
func boolValue(b bool) *Value {
	if b {
		return NewIntValue(1)
	}
	return NewIntValue(0)
}

// foldNumeric builds a left fold over two or more numbers, staying in
// int64 until a float operand shows up.
func foldNumeric(name string, fi func(a, b int64) int64, ff func(a, b float64) float64) Builtin {
	return func(args []*Value) (*Value, error) {
		if len(args) < 2 {
			return nil, arityError(name, "at least 2", len(args))
		}
		if err := wantNumbers(name, args); err != nil {
			return nil, err
		}
		acc := args[0]
		for _, arg := range args[1:] {
			if acc.Type == ValueTypeInt && arg.Type == ValueTypeInt {
				acc = NewIntValue(fi(acc.Int(), arg.Int()))
			} else {
				acc = NewFloatValue(ff(acc.Number(), arg.Number()))
			}
		}
		return acc, nil
	}
}

func divide(args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, arityError("/", "at least 2", len(args))
	}
	if err := wantNumbers("/", args); err != nil {
		return nil, err
	}
	acc := args[0]
	for _, arg := range args[1:] {
		if arg.Number() == 0 {
			return nil, fmt.Errorf("/: division by zero")
		}
		if acc.Type == ValueTypeInt && arg.Type == ValueTypeInt {
			acc = NewIntValue(acc.Int() / arg.Int())
		} else {
			acc = NewFloatValue(acc.Number() / arg.Number())
		}
	}
	return acc, nil
}

func compareNumeric(name string, cmp func(a, b float64) bool) Builtin {
	return func(args []*Value) (*Value, error) {
		if len(args) != 2 {
			return nil, arityError(name, "2", len(args))
		}
		if err := wantNumbers(name, args); err != nil {
			return nil, err
		}
		return boolValue(cmp(args[0].Number(), args[1].Number())), nil
	}
}

func equal(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, arityError("=", "2", len(args))
	}
	return boolValue(args[0].Equal(args[1])), nil
}

func car(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("car", "1", len(args))
	}
	items, err := wantList("car", args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("car: empty list")
	}
	return items[0], nil
}

func cdr(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("cdr", "1", len(args))
	}
	items, err := wantList("cdr", args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return NewListValue(nil), nil
	}
	return NewListValue(items[1:]), nil
}

func cons(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, arityError("cons", "2", len(args))
	}
	items, err := wantList("cons", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, 0, len(items)+1)
	out = append(out, args[0])
	out = append(out, items...)
	return NewListValue(out), nil
}

func list(args []*Value) (*Value, error) {
	return NewListValue(args), nil
}

func appendLists(args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, arityError("append", "at least 2", len(args))
	}
	out := []*Value{}
	for _, arg := range args {
		items, err := wantList("append", arg)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return NewListValue(out), nil
}

func length(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("length", "1", len(args))
	}
	items, err := wantList("length", args[0])
	if err != nil {
		return nil, err
	}
	return NewIntValue(int64(len(items))), nil
}

func isNull(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("null?", "1", len(args))
	}
	return boolValue(args[0].Type == ValueTypeList && len(args[0].List()) == 0), nil
}

func predicate(name string, test func(v *Value) bool) Builtin {
	return func(args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, "1", len(args))
		}
		return boolValue(test(args[0])), nil
	}
}

// begin relies on the application rule already having evaluated every
// argument left to right; it keeps only the last result.
func begin(args []*Value) (*Value, error) {
	if len(args) == 0 {
		return nil, arityError("begin", "at least 1", len(args))
	}
	return args[len(args)-1], nil
}

func not(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("not", "1", len(args))
	}
	return boolValue(!args[0].IsTruthy()), nil
}

func abs(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("abs", "1", len(args))
	}
	if err := wantNumbers("abs", args); err != nil {
		return nil, err
	}
	if args[0].Type == ValueTypeInt {
		if n := args[0].Int(); n < 0 {
			return NewIntValue(-n), nil
		}
		return args[0], nil
	}
	return NewFloatValue(math.Abs(args[0].Float64())), nil
}

func round(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, arityError("round", "1", len(args))
	}
	if err := wantNumbers("round", args); err != nil {
		return nil, err
	}
	if args[0].Type == ValueTypeInt {
		return args[0], nil
	}
	return NewFloatValue(math.Round(args[0].Float64())), nil
}

func mathUnary(name string, fn func(float64) float64) Builtin {
	return func(args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, "1", len(args))
		}
		if err := wantNumbers(name, args); err != nil {
			return nil, err
		}
		return NewFloatValue(fn(args[0].Number())), nil
	}
}

func pow(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, arityError("pow", "2", len(args))
	}
	if err := wantNumbers("pow", args); err != nil {
		return nil, err
	}
	return NewFloatValue(math.Pow(args[0].Number(), args[1].Number())), nil
}
