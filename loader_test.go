package tiddlylisp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.tl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// loadLines runs LoadFile and returns the printed lines after the banner.
func loadLines(t *testing.T, env *Env, src string) []string {
	t.Helper()
	var out bytes.Buffer
	path := writeProgram(t, src)
	require.NoError(t, LoadFile(path, env, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "Loading and executing"))
	return lines[1:]
}

func Test_LoadFile_MergesMultilineForms(t *testing.T) {
	env := NewGlobalEnv()
	lines := loadLines(t, env, `
(define x
  (+ 1
     2))
x
`)
	assert.Equal(t, []string{"3"}, lines)

	v, err := env.Get("x")
	require.NoError(t, err)
	wantInt(t, v, 3)
}

func Test_LoadFile_PrintsOnlyValueForms(t *testing.T) {
	// define and set! yield no printable value
	lines := loadLines(t, NewGlobalEnv(), `
(define z 9)
(set! z 10)
(+ z 1)
(* z 2)
`)
	assert.Equal(t, []string{"11", "20"}, lines)
}

func Test_LoadFile_StripsComments(t *testing.T) {
	lines := loadLines(t, NewGlobalEnv(), `
;; header comment with unbalanced parens (((
(define y 2) ; trailing comment
(+ y 1)
`)
	assert.Equal(t, []string{"3"}, lines)
}

func Test_LoadFile_StringAwareScanning(t *testing.T) {
	// parens and semicolons inside string literals are data, not structure
	lines := loadLines(t, NewGlobalEnv(), `
(q "semi ; colon")
(q "close ) paren")
`)
	assert.Equal(t, []string{`"semi ; colon"`, `"close ) paren"`}, lines)
}

func Test_LoadFile_StopsAtFirstError(t *testing.T) {
	env := NewGlobalEnv()
	var out bytes.Buffer
	path := writeProgram(t, `
(define a 1)
(boom)
(define b 2)
`)
	err := LoadFile(path, env, &out)
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "(boom)", le.Src)

	var ue *UnboundError
	require.ErrorAs(t, err, &ue)

	// bindings before the failure survive, later forms never ran
	v, gerr := env.Get("a")
	require.NoError(t, gerr)
	wantInt(t, v, 1)
	_, gerr = env.Get("b")
	require.Error(t, gerr)
}

func Test_LoadFile_UnclosedFormReported(t *testing.T) {
	path := writeProgram(t, "(define a\n")
	err := LoadFile(path, NewGlobalEnv(), new(bytes.Buffer))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, IsIncomplete(le.Err))
}

func Test_LoadFile_MissingFile(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.tl"), NewGlobalEnv(), new(bytes.Buffer))
	require.Error(t, err)
	var le *LoadError
	assert.False(t, errors.As(err, &le))
}

func Test_ScanLine(t *testing.T) {
	code, delta, inStr := scanLine("(define x 1)", false)
	assert.Equal(t, "(define x 1)", code)
	assert.Equal(t, 0, delta)
	assert.False(t, inStr)

	code, delta, _ = scanLine("(define y ; comment (((", false)
	assert.Equal(t, "(define y ", code)
	assert.Equal(t, 1, delta)

	// a string opened on one line carries into the next
	_, delta, inStr = scanLine(`(q "open ( string`, false)
	assert.Equal(t, 1, delta)
	assert.True(t, inStr)
	_, delta, inStr = scanLine(`closed ; here" ))`, true)
	assert.Equal(t, -2, delta)
	assert.False(t, inStr)
}
