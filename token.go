package xpath

import "strings"

// specialTokens holds the nine delimiter characters the grammar reserves.
// Each becomes its own single-character token; every other run of
// characters (including interior whitespace) becomes one token.
const specialTokens = `/()[]"'=<>`

// Tokenize splits expr into the flat token array the evaluator consumes.
// Whitespace between delimiters is preserved inside the surrounding token
// rather than discarded, since tokens like `'v'` or a space-padded integer
// literal depend on it; callers trim on use, not at tokenize-time.
func Tokenize(expr string) []string {
	var toks []string
	var buf []rune

	flush := func() {
		if len(buf) > 0 {
			toks = append(toks, string(buf))
			buf = buf[:0]
		}
	}

	for _, r := range expr {
		if strings.ContainsRune(specialTokens, r) {
			flush()
			toks = append(toks, string(r))
			continue
		}
		buf = append(buf, r)
	}
	flush()

	return toks
}

// isSpecialToken reports whether tok is exactly one of the nine delimiter
// characters.
func isSpecialToken(tok string) bool {
	return len(tok) == 1 && strings.ContainsRune(specialTokens, rune(tok[0]))
}
