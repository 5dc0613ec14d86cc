// Package tiddlylisp is a small interpreter for a Lisp-family language.
//
// The pipeline is text -> Tokenize -> Reader -> Eval:
//
//	toks := tiddlylisp.Tokenize("(+ 1 2)")
//	expr, err := tiddlylisp.NewReader(toks).Read()
//	v, err := tiddlylisp.Eval(expr, tiddlylisp.NewGlobalEnv())
//	fmt.Println(tiddlylisp.Render(v)) // "3"
//
// Or, collapsed, Parse+Eval+Render. Expressions and runtime values share one
// representation: the tagged Value below. Symbols evaluate via environment
// lookup, lists dispatch to the special forms or to procedure application,
// and every other tag evaluates to itself.
package tiddlylisp

// ValueTag discriminates the kinds a Value may hold. It selects which Go
// type lives in Value.Data (see the tag comments).
type ValueTag int

const (
	VTNone    ValueTag = iota // no payload; result of define/set!, never printed
	VTBool                    // bool
	VTInt                     // int64
	VTFloat                   // float64
	VTStr                     // string (without the surrounding quotes)
	VTSym                     // string
	VTList                    // []Value
	VTBuiltin                 // *Builtin
	VTClosure                 // *Closure
)

// String names the tag for error messages.
func (t ValueTag) String() string {
	switch t {
	case VTNone:
		return "none"
	case VTBool:
		return "bool"
	case VTInt:
		return "int"
	case VTFloat:
		return "float"
	case VTStr:
		return "string"
	case VTSym:
		return "symbol"
	case VTList:
		return "list"
	case VTBuiltin:
		return "builtin"
	case VTClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Value is the universal carrier for both parsed expressions and evaluation
// results. Tag selects the active case; Data holds the Go value for it.
// The zero Value is None.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// None is the unprintable result of define and set!.
var None = Value{Tag: VTNone}

// Constructors.
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }
func Sym(s string) Value    { return Value{Tag: VTSym, Data: s} }
func List(xs []Value) Value { return Value{Tag: VTList, Data: xs} }

// Builtin is a host-implemented binary procedure. Application left-folds
// longer argument lists pairwise, so every builtin sees exactly two values.
type Builtin struct {
	Name string
	Fn   func(a, b Value) (Value, error)
}

// Closure is a user-defined procedure: parameter names, an unevaluated body
// expression, and the environment captured where the lambda was evaluated.
// Env is shared by reference, so later mutation of the captured frame is
// visible to the closure.
type Closure struct {
	Params []string
	Body   Value
	Env    *Env
}

// BuiltinVal wraps b into a Value (Tag=VTBuiltin).
func BuiltinVal(b *Builtin) Value { return Value{Tag: VTBuiltin, Data: b} }

// ClosureVal wraps c into a Value (Tag=VTClosure).
func ClosureVal(c *Closure) Value { return Value{Tag: VTClosure, Data: c} }

// asFloat reads v as a float64 when it is numeric.
func asFloat(v Value) (float64, bool) {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64)), true
	case VTFloat:
		return v.Data.(float64), true
	}
	return 0, false
}

// Equal reports deep equality of two values. Ints and floats compare
// numerically across tags (3 equals 3.0); lists compare elementwise;
// procedures compare by identity. No other cross-tag pair is equal.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		af, aok := asFloat(a)
		bf, bok := asFloat(b)
		return aok && bok && af == bf
	}
	switch a.Tag {
	case VTNone:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTFloat:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr, VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case VTBuiltin, VTClosure:
		return a.Data == b.Data
	}
	return false
}

// Truthy reports whether v counts as true in a test position. False, zero,
// the empty string, the empty list, and None are falsy; everything else,
// procedures and symbols included, is truthy.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTNone:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTFloat:
		return v.Data.(float64) != 0
	case VTStr:
		return v.Data.(string) != ""
	case VTList:
		return len(v.Data.([]Value)) != 0
	}
	return true
}
