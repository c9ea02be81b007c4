package voice

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops combining marks,
// so "pâtes" and "pates" compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for lexicon keys and match candidates:
// lowercase, accents stripped, punctuation collapsed to spaces,
// whitespace trimmed and collapsed.
//
// A trailing "s" is stripped from each token as a crude depluralization.
// This is a heuristic, not a linguistic rule: it helps "pizzas" find
// "pizza" but will also shorten names that genuinely end in "s".
func Normalize(text string) string {
	s := strings.ToLower(text)

	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	for i, tok := range tokens {
		tokens[i] = depluralize(tok)
	}

	return strings.Join(tokens, " ")
}

func depluralize(token string) string {
	if len(token) > 2 && strings.HasSuffix(token, "s") {
		return token[:len(token)-1]
	}
	return token
}
