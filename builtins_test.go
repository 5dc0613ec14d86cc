package tiddlylisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Builtins_IntArithmetic(t *testing.T) {
	v, err := opAdd(Int(1), Int(2))
	require.NoError(t, err)
	wantInt(t, v, 3)

	v, err = opMul(Int(-3), Int(4))
	require.NoError(t, err)
	wantInt(t, v, -12)
}

func Test_Builtins_FloatPromotion(t *testing.T) {
	v, err := opAdd(Int(2), Float(0.5))
	require.NoError(t, err)
	wantFloat(t, v, 2.5)

	v, err = opDiv(Float(7), Int(2))
	require.NoError(t, err)
	wantFloat(t, v, 3.5)
}

func Test_Builtins_FloorDivision(t *testing.T) {
	// integer division floors toward negative infinity
	cases := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
	}
	for _, c := range cases {
		v, err := opDiv(Int(c.a), Int(c.b))
		require.NoError(t, err)
		wantInt(t, v, c.want)
	}
}

func Test_Builtins_DivisionByZero(t *testing.T) {
	var te *TypeError
	_, err := opDiv(Int(1), Int(0))
	require.ErrorAs(t, err, &te)
	_, err = opDiv(Float(1), Float(0))
	require.ErrorAs(t, err, &te)
}

func Test_Builtins_StringConcat(t *testing.T) {
	v, err := opAdd(Str("foo"), Str("bar"))
	require.NoError(t, err)
	wantStr(t, v, "foobar")

	// only + knows strings
	var te *TypeError
	_, err = opMul(Str("ab"), Int(3))
	require.ErrorAs(t, err, &te)
	_, err = opSub(Str("ab"), Str("b"))
	require.ErrorAs(t, err, &te)
}

func Test_Builtins_Comparisons(t *testing.T) {
	check := func(fn func(a, b Value) (Value, error), a, b Value, want bool) {
		t.Helper()
		v, err := fn(a, b)
		require.NoError(t, err)
		wantBool(t, v, want)
	}

	check(opGt, Int(3), Int(2), true)
	check(opLt, Int(3), Int(2), false)
	check(opGe, Int(2), Float(2.0), true)
	check(opLe, Float(1.5), Int(2), true)
	check(opGt, Str("b"), Str("a"), true)
	check(opLe, Str("a"), Str("a"), true)
}

func Test_Builtins_CompareTypeErrors(t *testing.T) {
	var te *TypeError
	_, err := opGt(Int(1), Str("a"))
	require.ErrorAs(t, err, &te)
	_, err = opLt(Bool(true), Int(1))
	require.ErrorAs(t, err, &te)
}

func Test_Builtins_Equality(t *testing.T) {
	// = never errors and goes deep, unlike eq?
	v, err := opEq(
		List([]Value{Int(1), Int(2)}),
		List([]Value{Int(1), Int(2)}))
	require.NoError(t, err)
	wantBool(t, v, true)

	v, err = opEq(Int(3), Float(3.0))
	require.NoError(t, err)
	wantBool(t, v, true)

	v, err = opEq(Int(1), Str("1"))
	require.NoError(t, err)
	wantBool(t, v, false)

	assert.Len(t, builtinOps, 9)
}
