package tiddlylisp

import (
	"math"
	"strconv"
	"strings"
)

// Render converts a value back to source-like text: atoms print their
// natural form, strings keep their surrounding quotes, lists print
// space-joined inside parens. Booleans print as the True/False globals.
// For expressions built from atoms and lists the output parses back to an
// equal expression. None renders empty; callers skip printing it.
func Render(v Value) string {
	switch v.Tag {
	case VTNone:
		return ""
	case VTBool:
		if v.Data.(bool) {
			return "True"
		}
		return "False"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return formatFloat(v.Data.(float64))
	case VTStr:
		return `"` + v.Data.(string) + `"`
	case VTSym:
		return v.Data.(string)
	case VTList:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = Render(x)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case VTBuiltin:
		return "<builtin:" + v.Data.(*Builtin).Name + ">"
	case VTClosure:
		return "<closure>"
	default:
		return "<unknown>"
	}
}

// String makes values readable in logs and test failures.
func (v Value) String() string { return Render(v) }

// formatFloat keeps a mark of floatness: 3.0 renders as "3.0", not "3",
// so a rendered float reads back as a float.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
