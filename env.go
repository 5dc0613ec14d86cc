package tiddlylisp

// Env is a lexical environment frame with an outer link. Lookups and set!
// walk outer-ward; Define always binds in the current frame. The root frame
// has a nil outer. Variable and procedure names share one namespace: a
// procedure is just a variable whose value happens to be a lambda.
type Env struct {
	outer *Env
	table map[string]Value
}

// NewEnv creates a frame enclosed by outer (which may be nil).
func NewEnv(outer *Env) *Env {
	return &Env{outer: outer, table: make(map[string]Value)}
}

// Define binds name in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get returns the value of the innermost binding of name.
func (e *Env) Get(name string) (Value, error) {
	for f := e; f != nil; f = f.outer {
		if v, ok := f.table[name]; ok {
			return v, nil
		}
	}
	return Value{}, &UnboundError{Name: name}
}

// Set overwrites the innermost existing binding of name. Unlike Define it
// never creates a binding; an unbound name is an error.
func (e *Env) Set(name string, v Value) error {
	for f := e; f != nil; f = f.outer {
		if _, ok := f.table[name]; ok {
			f.table[name] = v
			return nil
		}
	}
	return &UnboundError{Name: name}
}
