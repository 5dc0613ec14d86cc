package tiddlylisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Render_Atoms(t *testing.T) {
	assert.Equal(t, "42", Render(Int(42)))
	assert.Equal(t, "-7", Render(Int(-7)))
	assert.Equal(t, "0.5", Render(Float(0.5)))
	assert.Equal(t, "3.0", Render(Float(3))) // floats keep their mark
	assert.Equal(t, "1e+20", Render(Float(1e20)))
	assert.Equal(t, `"hi there"`, Render(Str("hi there")))
	assert.Equal(t, "foo", Render(Sym("foo")))
	assert.Equal(t, "True", Render(Bool(true)))
	assert.Equal(t, "False", Render(Bool(false)))
	assert.Equal(t, "", Render(None))
}

func Test_Render_Lists(t *testing.T) {
	assert.Equal(t, "()", Render(List(nil)))
	assert.Equal(t, "(1 2 3)", Render(List([]Value{Int(1), Int(2), Int(3)})))
	assert.Equal(t, "(a (b c) ())",
		Render(List([]Value{
			Sym("a"),
			List([]Value{Sym("b"), Sym("c")}),
			List(nil),
		})))
}

func Test_Render_Procedures(t *testing.T) {
	env := NewGlobalEnv()
	v, err := env.Get("+")
	require.NoError(t, err)
	assert.Equal(t, "<builtin:+>", Render(v))

	assert.Equal(t, "<closure>", Render(ClosureVal(&Closure{})))
}

func Test_Render_RoundTrip(t *testing.T) {
	// parse(render(e)) == e for expressions of atoms and lists
	for _, src := range []string{
		"42",
		"-7",
		"3.5",
		"3.0",
		"x",
		`"hi there"`,
		"()",
		"(1 2 3)",
		"(a (b c) ())",
		"(lambda (x) (+ x 1))",
		"(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))",
	} {
		e := mustParse(t, src)
		back := mustParse(t, Render(e))
		require.True(t, Equal(e, back), "round trip failed for %q: %s", src, Render(e))
	}
}

func Test_Render_EvalResults(t *testing.T) {
	wantRender(t, evalSrc(t, "(cons 1 (q (2 3)))"), "(1 2 3)")
	wantRender(t, evalSrc(t, "(/ 1.0 4)"), "0.25")
	wantRender(t, evalSrc(t, "(q (1.0 True))"), "(1.0 True)")
}
