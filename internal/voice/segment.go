package voice

import (
	"strconv"
	"strings"
	"unicode"
)

// Chunk is a fragment of an utterance believed to describe one item.
// The label is the raw fragment with quantity and filler words removed;
// normalization happens later, in the matcher.
type Chunk struct {
	Label    string
	Quantity int
}

// numberWords maps spoken French quantities 1-10 to values. Extend here
// if callers start saying larger quantities out loud.
var numberWords = map[string]int{
	"un": 1, "une": 1,
	"deux":   2,
	"trois":  3,
	"quatre": 4,
	"cinq":   5,
	"six":    6,
	"sept":   7,
	"huit":   8,
	"neuf":   9,
	"dix":    10,
}

// stopwords are politeness and filler tokens that carry no order
// information. Articles are kept: menu names contain them.
var stopwords = map[string]bool{
	"et": true,
	"je": true, "j": true,
	"voudrais": true, "voudrai": true, "veux": true, "aimerais": true,
	"prendre": true, "prends": true, "commander": true,
	"bonjour": true, "bonsoir": true, "merci": true,
	"svp": true, "stp": true, "sil": true, "s": true, "il": true,
	"vous": true, "te": true, "plait": true, "plaît": true,
	"euh": true, "heu": true, "donc": true, "alors": true,
	"voila": true, "voilà": true,
}

// Segment splits an utterance into item candidates, each with a leading
// quantity. Commas, "+", ";" and the word "et" all act as item
// separators. Malformed input is never an error: the worst case is zero
// chunks, which downstream treats as nothing recognized.
func Segment(utterance string) []Chunk {
	parts := splitConnectors(utterance)
	if len(parts) == 0 {
		// No separators and nothing survived the split: treat the whole
		// utterance as a single candidate so a bare "margherita" is kept.
		parts = []string{utterance}
	}

	var chunks []Chunk
	for _, part := range parts {
		tokens := dropStopwords(strings.Fields(strings.ToLower(part)))
		qty, tokens := extractQuantity(tokens)
		label := strings.Join(tokens, " ")
		if label == "" {
			continue
		}
		chunks = append(chunks, Chunk{Label: label, Quantity: qty})
	}
	return chunks
}

// splitConnectors replaces every connector with one separator, then
// splits. "et" only separates as a standalone token.
func splitConnectors(utterance string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(utterance) {
		switch r {
		case ',', '+', ';':
			b.WriteString(" | ")
		default:
			b.WriteRune(r)
		}
	}

	var parts []string
	var current []string
	flush := func() {
		if joined := strings.TrimSpace(strings.Join(current, " ")); joined != "" {
			parts = append(parts, joined)
		}
		current = current[:0]
	}

	for _, tok := range strings.Fields(b.String()) {
		if tok == "|" || tok == "et" {
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()
	return parts
}

// dropStopwords also splits on apostrophes so elisions like "j'aimerais"
// and "s'il" are filtered piecewise. Tokens are trimmed of framing
// punctuation first; a token with nothing left carries no information
// and is dropped, which keeps the whole-utterance fallback chunk clean.
func dropStopwords(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		subs := strings.FieldsFunc(tok, func(r rune) bool {
			return r == '\'' || r == '’'
		})
		for _, sub := range subs {
			sub = strings.TrimFunc(sub, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if sub == "" || stopwords[sub] {
				continue
			}
			out = append(out, sub)
		}
	}
	return out
}

// extractQuantity consumes a leading quantity token: a digit literal
// ("2", "3x"), then a number word, then a default of 1.
func extractQuantity(tokens []string) (int, []string) {
	if len(tokens) == 0 {
		return 1, tokens
	}

	head := tokens[0]
	if n, ok := parseDigits(head); ok {
		rest := tokens[1:]
		// "2 x pizza" leaves a bare multiplier token behind
		if len(rest) > 0 && rest[0] == "x" {
			rest = rest[1:]
		}
		return n, rest
	}

	if n, ok := numberWords[head]; ok {
		return n, tokens[1:]
	}

	return 1, tokens
}

func parseDigits(tok string) (int, bool) {
	tok = strings.TrimSuffix(tok, "x")
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
