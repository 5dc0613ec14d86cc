package tiddlylisp

import (
	"errors"
	"fmt"
)

// SyntaxError reports a malformed token sequence. Incomplete marks the
// specific case of running out of tokens mid-form, which interactive
// callers use to keep reading lines instead of reporting.
type SyntaxError struct {
	Msg        string
	Incomplete bool
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Msg }

// IsIncomplete reports whether err is a SyntaxError caused by input that
// stops before the form is closed. The REPL probes accumulated input with
// Parse and continues prompting while this returns true.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Incomplete
}

// UnboundError reports a symbol absent from the whole environment chain.
// Raised by lookup and by set!.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string { return "unbound variable: " + e.Name }

// TypeError reports a value of the wrong kind for an operation, such as
// car of a non-list or applying a non-procedure.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return "type error: " + e.Msg }

// ArityError reports a wrong argument count to a special form or
// procedure. Want is textual so forms can say "at least 1".
type ArityError struct {
	Form string
	Want string
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected %s argument(s), got %d", e.Form, e.Want, e.Got)
}

// RuntimeError reports an evaluation failure that is none of the above,
// currently only the recursion depth guard.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func errTypef(format string, args ...interface{}) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func errArity(form, want string, got int) error {
	return &ArityError{Form: form, Want: want, Got: got}
}
