package tiddlylisp

import "strconv"

// MaxDepth bounds evaluator recursion. Go cannot recover from real stack
// exhaustion, so eval counts its own depth and fails with a RuntimeError at
// the limit. The failure is an ordinary error: bindings made by forms that
// completed before it remain in effect.
var MaxDepth = 10000

// Eval evaluates an expression in an environment. Symbols resolve through
// the environment chain, non-list atoms evaluate to themselves, and lists
// dispatch on their head symbol: first the special forms (quote/q, atom?,
// eq?, car, cdr, cons, cond, null?, if, set!, define, lambda, begin), then
// procedure application. Each special form checks its arity exactly; only
// cond and begin are variadic.
func Eval(x Value, env *Env) (Value, error) {
	return eval(x, env, 0)
}

func eval(x Value, env *Env, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, &RuntimeError{Msg: "recursion depth exceeded"}
	}

	switch x.Tag {
	case VTSym:
		return env.Get(x.Data.(string))
	case VTList:
		// handled below
	default:
		return x, nil
	}

	items := x.Data.([]Value)
	if len(items) == 0 {
		return Value{}, errTypef("cannot apply the empty list")
	}
	args := items[1:]

	if items[0].Tag == VTSym {
		form := items[0].Data.(string)
		switch form {
		case "quote", "q":
			if len(args) != 1 {
				return Value{}, errArity(form, "1", len(args))
			}
			return args[0], nil

		case "atom?":
			if len(args) != 1 {
				return Value{}, errArity(form, "1", len(args))
			}
			v, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			return Bool(v.Tag != VTList), nil

		case "eq?":
			if len(args) != 2 {
				return Value{}, errArity(form, "2", len(args))
			}
			a, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			b, err := eval(args[1], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			return Bool(a.Tag != VTList && b.Tag != VTList && Equal(a, b)), nil

		case "car":
			if len(args) != 1 {
				return Value{}, errArity(form, "1", len(args))
			}
			v, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			if v.Tag != VTList {
				return Value{}, errTypef("car: expected a list, got %s", v.Tag)
			}
			xs := v.Data.([]Value)
			if len(xs) == 0 {
				return Value{}, errTypef("car: empty list")
			}
			return xs[0], nil

		case "cdr":
			if len(args) != 1 {
				return Value{}, errArity(form, "1", len(args))
			}
			v, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			if v.Tag != VTList {
				return Value{}, errTypef("cdr: expected a list, got %s", v.Tag)
			}
			xs := v.Data.([]Value)
			if len(xs) <= 1 {
				return List([]Value{}), nil
			}
			return List(xs[1:]), nil

		case "cons":
			if len(args) != 2 {
				return Value{}, errArity(form, "2", len(args))
			}
			head, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			tail, err := eval(args[1], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			if tail.Tag != VTList {
				return Value{}, errTypef("cons: expected a list, got %s", tail.Tag)
			}
			xs := tail.Data.([]Value)
			return List(append([]Value{head}, xs...)), nil

		case "cond":
			return evalCond(args, env, depth)

		case "null?":
			if len(args) != 1 {
				return Value{}, errArity(form, "1", len(args))
			}
			v, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			return Bool(v.Tag == VTList && len(v.Data.([]Value)) == 0), nil

		case "if":
			if len(args) != 3 {
				return Value{}, errArity(form, "3", len(args))
			}
			t, err := eval(args[0], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			if Truthy(t) {
				return eval(args[1], env, depth+1)
			}
			return eval(args[2], env, depth+1)

		case "set!":
			if len(args) != 2 {
				return Value{}, errArity(form, "2", len(args))
			}
			if args[0].Tag != VTSym {
				return Value{}, errTypef("set!: expected a symbol, got %s", args[0].Tag)
			}
			v, err := eval(args[1], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			if err := env.Set(args[0].Data.(string), v); err != nil {
				return Value{}, err
			}
			return None, nil

		case "define":
			if len(args) != 2 {
				return Value{}, errArity(form, "2", len(args))
			}
			if args[0].Tag != VTSym {
				return Value{}, errTypef("define: expected a symbol, got %s", args[0].Tag)
			}
			v, err := eval(args[1], env, depth+1)
			if err != nil {
				return Value{}, err
			}
			env.Define(args[0].Data.(string), v)
			return None, nil

		case "lambda":
			if len(args) != 2 {
				return Value{}, errArity(form, "2", len(args))
			}
			if args[0].Tag != VTList {
				return Value{}, errTypef("lambda: parameters must be a list, got %s", args[0].Tag)
			}
			ps := args[0].Data.([]Value)
			params := make([]string, len(ps))
			for i, p := range ps {
				if p.Tag != VTSym {
					return Value{}, errTypef("lambda: parameters must be symbols, got %s", p.Tag)
				}
				params[i] = p.Data.(string)
			}
			return ClosureVal(&Closure{Params: params, Body: args[1], Env: env}), nil

		case "begin":
			if len(args) == 0 {
				return Value{}, errArity(form, "at least 1", 0)
			}
			var v Value
			for _, a := range args {
				var err error
				v, err = eval(a, env, depth+1)
				if err != nil {
					return Value{}, err
				}
			}
			return v, nil
		}
	}

	return evalCall(items, env, depth)
}

// evalCond tries each (test result) clause in order and evaluates the
// result of the first truthy test. No matching clause yields the empty
// list rather than an error.
func evalCond(clauses []Value, env *Env, depth int) (Value, error) {
	for _, cl := range clauses {
		if cl.Tag != VTList || len(cl.Data.([]Value)) != 2 {
			return Value{}, errTypef("cond: clause must be a (test result) pair")
		}
		pair := cl.Data.([]Value)
		t, err := eval(pair[0], env, depth+1)
		if err != nil {
			return Value{}, err
		}
		if Truthy(t) {
			return eval(pair[1], env, depth+1)
		}
	}
	return List([]Value{}), nil
}

// evalCall evaluates every element left to right, then applies the first
// result to the rest. The operator position gets no special treatment: it
// is evaluated like any argument and must come out a procedure.
func evalCall(items []Value, env *Env, depth int) (Value, error) {
	vals := make([]Value, len(items))
	for i, it := range items {
		v, err := eval(it, env, depth+1)
		if err != nil {
			return Value{}, err
		}
		vals[i] = v
	}
	return apply(vals[0], vals[1:], depth)
}

// apply invokes a procedure on already-evaluated arguments. A single
// argument to + or - gets a zero prepended, so (- 5) is 0-5. Builtins are
// binary and left-fold longer argument lists pairwise: (op a b c) is
// op(op(a,b),c). Closures bind parameters positionally in a fresh frame
// whose outer is the captured environment, then evaluate the body there.
func apply(proc Value, args []Value, depth int) (Value, error) {
	switch proc.Tag {
	case VTBuiltin:
		b := proc.Data.(*Builtin)
		if len(args) == 1 && (b.Name == "+" || b.Name == "-") {
			args = []Value{Int(0), args[0]}
		}
		if len(args) < 2 {
			return Value{}, errArity(b.Name, "at least 2", len(args))
		}
		acc := args[0]
		for _, v := range args[1:] {
			r, err := b.Fn(acc, v)
			if err != nil {
				return Value{}, err
			}
			acc = r
		}
		return acc, nil

	case VTClosure:
		c := proc.Data.(*Closure)
		if len(args) != len(c.Params) {
			return Value{}, errArity("lambda", strconv.Itoa(len(c.Params)), len(args))
		}
		frame := NewEnv(c.Env)
		for i, p := range c.Params {
			frame.Define(p, args[i])
		}
		return eval(c.Body, frame, depth+1)

	default:
		return Value{}, errTypef("not a procedure: %s", Render(proc))
	}
}
