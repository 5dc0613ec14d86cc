package tiddlylisp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadError reports the first failure while loading a program file. Line is
// the first physical line of the offending form and Src its merged source
// text.
type LoadError struct {
	Path string
	Line int
	Src  string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile executes the program in path against env, writing the rendered
// value of each form to out (define and set! print nothing). Physical
// lines merge until parenthesis depth returns to zero, so forms may span
// lines; ";" starts a comment; parens inside string literals do not count,
// and the in-string state carries across lines. Loading stops at the first
// parse or eval failure, returned as a *LoadError. Callers typically
// report it and drop into the REPL, keeping the bindings made so far.
func LoadFile(path string, env *Env, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(out, "Loading and executing '%s'.\n", path)

	run := func(src string, line int) error {
		expr, err := Parse(src)
		if err == nil {
			var v Value
			v, err = Eval(expr, env)
			if err == nil {
				if v.Tag != VTNone {
					fmt.Fprintln(out, Render(v))
				}
				return nil
			}
		}
		return &LoadError{Path: path, Line: line, Src: strings.TrimSpace(src), Err: err}
	}

	var (
		chunk     strings.Builder
		depth     int
		inStr     bool
		lineNo    int
		startLine int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		code, delta, nowStr := scanLine(sc.Text(), inStr)
		inStr = nowStr
		code = strings.TrimSpace(code)
		if code != "" {
			if chunk.Len() == 0 {
				startLine = lineNo
			}
			chunk.WriteString(code)
			chunk.WriteByte(' ')
		}
		depth += delta
		if depth <= 0 && chunk.Len() > 0 {
			if err := run(chunk.String(), startLine); err != nil {
				return err
			}
			chunk.Reset()
			depth = 0
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	// An unclosed form at EOF parses to an error and gets reported rather
	// than silently dropped.
	if chunk.Len() > 0 {
		return run(chunk.String(), startLine)
	}
	return nil
}

// scanLine strips any ";" comment and counts the net paren depth of one
// line. inStr is the string-literal state carried in from the previous
// line; quotes toggle it and suppress both comment and paren handling.
func scanLine(line string, inStr bool) (code string, delta int, outInStr bool) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inStr {
			if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case ';':
			return line[:i], delta, inStr
		case '(':
			delta++
		case ')':
			delta--
		}
	}
	return line, delta, inStr
}
