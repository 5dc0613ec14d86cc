package tiddlylisp

import "strings"

// The builtin procedures. All are binary; application supplies the
// left-fold for longer argument lists and the unary sign convention for
// + and -.

func opAdd(a, b Value) (Value, error) {
	if a.Tag == VTStr && b.Tag == VTStr {
		return Str(a.Data.(string) + b.Data.(string)), nil
	}
	return arith("+", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

func opSub(a, b Value) (Value, error) {
	return arith("-", a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

func opMul(a, b Value) (Value, error) {
	return arith("*", a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

func opDiv(a, b Value) (Value, error) {
	if bf, ok := asFloat(b); ok && bf == 0 {
		return Value{}, errTypef("/: division by zero")
	}
	return arith("/", a, b, floorDiv,
		func(x, y float64) float64 { return x / y })
}

// arith applies the int op when both operands are ints, otherwise promotes
// to float. Anything non-numeric is a type error.
func arith(name string, a, b Value, iop func(int64, int64) int64, fop func(float64, float64) float64) (Value, error) {
	if a.Tag == VTInt && b.Tag == VTInt {
		return Int(iop(a.Data.(int64), b.Data.(int64))), nil
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return Value{}, errTypef("%s: expected numbers, got %s and %s", name, a.Tag, b.Tag)
	}
	return Float(fop(af, bf)), nil
}

// floorDiv rounds toward negative infinity, so (/ -7 2) is -4.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// compareVals orders two values: -1, 0, or 1. Numbers order numerically
// across int/float, strings lexicographically; any other pairing is a
// type error.
func compareVals(name string, a, b Value) (int, error) {
	if a.Tag == VTInt && b.Tag == VTInt {
		x, y := a.Data.(int64), b.Data.(int64)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			}
			return 0, nil
		}
	}
	if a.Tag == VTStr && b.Tag == VTStr {
		return strings.Compare(a.Data.(string), b.Data.(string)), nil
	}
	return 0, errTypef("%s: cannot compare %s and %s", name, a.Tag, b.Tag)
}

func opGt(a, b Value) (Value, error) {
	c, err := compareVals(">", a, b)
	if err != nil {
		return Value{}, err
	}
	return Bool(c > 0), nil
}

func opLt(a, b Value) (Value, error) {
	c, err := compareVals("<", a, b)
	if err != nil {
		return Value{}, err
	}
	return Bool(c < 0), nil
}

func opGe(a, b Value) (Value, error) {
	c, err := compareVals(">=", a, b)
	if err != nil {
		return Value{}, err
	}
	return Bool(c >= 0), nil
}

func opLe(a, b Value) (Value, error) {
	c, err := compareVals("<=", a, b)
	if err != nil {
		return Value{}, err
	}
	return Bool(c <= 0), nil
}

func opEq(a, b Value) (Value, error) {
	return Bool(Equal(a, b)), nil
}

var builtinOps = []*Builtin{
	{Name: "+", Fn: opAdd},
	{Name: "-", Fn: opSub},
	{Name: "*", Fn: opMul},
	{Name: "/", Fn: opDiv},
	{Name: ">", Fn: opGt},
	{Name: "<", Fn: opLt},
	{Name: ">=", Fn: opGe},
	{Name: "<=", Fn: opLe},
	{Name: "=", Fn: opEq},
}

// NewGlobalEnv returns a fresh root environment seeded with the builtin
// procedures and the True/False constants. It is built once per process
// and passed explicitly to Eval. Extending the language with another
// builtin is one more entry in builtinOps.
func NewGlobalEnv() *Env {
	env := NewEnv(nil)
	for _, op := range builtinOps {
		env.Define(op.Name, BuiltinVal(op))
	}
	env.Define("True", Bool(true))
	env.Define("False", Bool(false))
	return env
}
