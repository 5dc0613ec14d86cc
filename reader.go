package tiddlylisp

import (
	"strconv"
	"strings"
)

// Reader consumes tokens destructively from the front; recursive Read calls
// share the cursor. One Reader reads one or more complete forms.
type Reader struct {
	tokens []string
	pos    int
}

// NewReader returns a Reader positioned at the first token.
func NewReader(tokens []string) *Reader { return &Reader{tokens: tokens} }

// Rest returns the tokens not yet consumed.
func (r *Reader) Rest() []string { return r.tokens[r.pos:] }

func (r *Reader) next() (string, error) {
	if r.pos >= len(r.tokens) {
		return "", &SyntaxError{Msg: "unexpected EOF while reading", Incomplete: true}
	}
	t := r.tokens[r.pos]
	r.pos++
	return t, nil
}

// Read consumes one expression. Lists nest recursively; a stray ")" and
// running out of tokens mid-form are syntax errors, the latter marked
// incomplete (see IsIncomplete).
func (r *Reader) Read() (Value, error) {
	tok, err := r.next()
	if err != nil {
		return Value{}, err
	}
	switch tok {
	case "(":
		items := []Value{}
		for {
			if r.pos >= len(r.tokens) {
				return Value{}, &SyntaxError{Msg: "unexpected EOF while reading", Incomplete: true}
			}
			if r.tokens[r.pos] == ")" {
				r.pos++
				return List(items), nil
			}
			item, err := r.Read()
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
	case ")":
		return Value{}, &SyntaxError{Msg: "unexpected )"}
	default:
		return atom(tok), nil
	}
}

// atom resolves a non-paren token: integer, else float, else a string
// literal when properly quoted, else a symbol. An unterminated quote stays
// a symbol verbatim and fails lookup during evaluation.
func atom(tok string) Value {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f)
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return Str(tok[1 : len(tok)-1])
	}
	return Sym(tok)
}

// Parse reads the first complete expression from text. Tokens after it are
// ignored; callers feed one balanced form at a time.
func Parse(text string) (Value, error) {
	return NewReader(Tokenize(text)).Read()
}
