package lantern

import (
	"fmt"
	"strings"

	"github.com/Techdojo/Lantern/ast"
)

// Builtin is a native procedure. It receives already-evaluated arguments
// and returns a value synchronously.
type Builtin func(args []*Value) (*Value, error)

// Lambda is a user-defined procedure: parameter names, a body expression
// and the environment captured at the point of its creation. The captured
// reference is fixed for the lifetime of the procedure.
type Lambda struct {
	params []string
	body   *ast.Node
	env    *Env
}

// ValueType represents all the possible types of a value
type ValueType uint8

// List of value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeFloat
	ValueTypeSymbol
	ValueTypeList
	ValueTypeBuiltin
	ValueTypeLambda
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:     "nil",
	ValueTypeInt:     "int",
	ValueTypeFloat:   "float",
	ValueTypeSymbol:  "symbol",
	ValueTypeList:    "list",
	ValueTypeBuiltin: "builtin",
	ValueTypeLambda:  "lambda",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of an evaluation.
type Value struct {
	v    interface{}
	name string

	Type ValueType
}

// Nil is the unit marker returned by forms that produce no usable value.
var Nil = &Value{Type: ValueTypeNil}

// NewIntValue creates a value of type int
func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewFloatValue creates a value of type float
func NewFloatValue(v float64) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

// NewSymbolValue creates a value of type symbol
func NewSymbolValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeSymbol}
}

// NewListValue creates a value of type list
func NewListValue(v []*Value) *Value {
	return &Value{v: v, Type: ValueTypeList}
}

// NewBuiltinValue creates a named native procedure value
func NewBuiltinValue(name string, fn Builtin) *Value {
	return &Value{v: fn, name: name, Type: ValueTypeBuiltin}
}

func newLambdaValue(l *Lambda) *Value {
	return &Value{v: l, Type: ValueTypeLambda}
}

// Int returns the value of an int value
func (v Value) Int() int64 {
	return v.v.(int64)
}

// Float64 returns the value of a float value
func (v Value) Float64() float64 {
	return v.v.(float64)
}

// Symbol returns the name of a symbol value
func (v Value) Symbol() string {
	return v.v.(string)
}

// List returns the elements of a list value
func (v Value) List() []*Value {
	return v.v.([]*Value)
}

// Builtin returns the native function of a builtin value
func (v Value) Builtin() Builtin {
	return v.v.(Builtin)
}

// Lambda returns the procedure held by a lambda value
func (v Value) Lambda() *Lambda {
	return v.v.(*Lambda)
}

// IsNil returns true for the unit marker
func (v *Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

// IsNumber returns true for int and float values
func (v Value) IsNumber() bool {
	return v.Type == ValueTypeInt || v.Type == ValueTypeFloat
}

// IsCallable returns true for builtin and lambda values
func (v Value) IsCallable() bool {
	return v.Type == ValueTypeBuiltin || v.Type == ValueTypeLambda
}

// Number returns the numeric value as a float64, whatever its exact type
func (v Value) Number() float64 {
	if v.Type == ValueTypeInt {
		return float64(v.v.(int64))
	}
	return v.v.(float64)
}

// IsTruthy reports how a conditional sees the value: nil, zero and the
// empty list are false, everything else is true.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeInt:
		return v.Int() != 0
	case ValueTypeFloat:
		return v.Float64() != 0
	case ValueTypeList:
		return len(v.List()) > 0
	}
	return true
}

// Equal reports structural equality. Numbers compare numerically across
// int and float, procedures compare by identity.
func (v *Value) Equal(w *Value) bool {
	if v.IsNumber() && w.IsNumber() {
		return v.Number() == w.Number()
	}
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeSymbol:
		return v.Symbol() == w.Symbol()
	case ValueTypeList:
		a, b := v.List(), w.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	}
	return v == w
}

// String renders the value in its canonical, re-readable form.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "nil"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.v.(int64))
	case ValueTypeFloat:
		return fmt.Sprintf("%v", v.v.(float64))
	case ValueTypeSymbol:
		return v.v.(string)
	case ValueTypeList:
		vv := v.v.([]*Value)
		values := []string{}
		for i := range vv {
			values = append(values, vv[i].String())
		}
		return "(" + strings.Join(values, " ") + ")"
	case ValueTypeBuiltin:
		return fmt.Sprintf("<builtin %s>", v.name)
	case ValueTypeLambda:
		l := v.v.(*Lambda)
		return fmt.Sprintf("<lambda (%s)>", strings.Join(l.params, " "))
	}
	return fmt.Sprintf("%v", v.v)
}
