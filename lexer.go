package tiddlylisp

import "strings"

// Tokenize splits source text into tokens: "(", ")", and atoms. Parens are
// padded with spaces and the text split on whitespace, except that words
// enclosed in double quotes are re-assembled into a single string token,
// joined by single spaces. There are no escape sequences. Tokenize never
// fails; an unterminated quote yields the accumulated text as one token and
// the error surfaces later, at evaluation.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "(", " ( ")
	text = strings.ReplaceAll(text, ")", " ) ")
	words := strings.Fields(text)

	toks := make([]string, 0, len(words))
	var pending []string // words of an open string literal
	for _, w := range words {
		switch {
		case len(pending) > 0:
			pending = append(pending, w)
			if strings.HasSuffix(w, `"`) {
				toks = append(toks, strings.Join(pending, " "))
				pending = nil
			}
		case strings.HasPrefix(w, `"`):
			// A single word can open and close the literal itself;
			// a lone quote character only opens it.
			if len(w) >= 2 && strings.HasSuffix(w, `"`) {
				toks = append(toks, w)
			} else {
				pending = append(pending, w)
			}
		default:
			toks = append(toks, w)
		}
	}
	if len(pending) > 0 {
		toks = append(toks, strings.Join(pending, " "))
	}
	return toks
}
