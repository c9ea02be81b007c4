package voice

import (
	"strings"

	"github.com/lmasumbuku/backend/internal/menu"
)

// MatchThreshold is the acceptance cutoff for the similarity stage, on a
// 0-1 scale. 0.80 was calibrated against the labeled utterances in
// match_test.go: low enough to absorb transcription typos, high enough
// that an unknown dish does not latch onto the closest menu entry.
const MatchThreshold = 0.80

// containmentMinLen keeps degenerate labels ("a", "la") from substring-
// matching half the menu.
const containmentMinLen = 3

// Match is a resolved chunk label.
type Match struct {
	Item  menu.Item
	Key   string
	Score float64
}

// MatchLabel resolves a raw chunk label against the lexicon. Stages are
// tried in order and short-circuit:
//
//  1. exact normalized key
//  2. containment either way ("margherita" vs "pizza margherita")
//  3. best similarity score at or above MatchThreshold
//
// Stages 2 and 3 walk keys in lexicon insertion order and keep the first
// best candidate, so ties resolve the same way on every call. A miss is
// not an error; the chunk is simply not part of the order.
func MatchLabel(label string, lex *Lexicon) (Match, bool) {
	key := Normalize(label)
	if key == "" || lex.Empty() {
		return Match{}, false
	}

	if it, ok := lex.Lookup(key); ok {
		return Match{Item: it, Key: key, Score: 1}, true
	}

	if len(key) >= containmentMinLen {
		for _, k := range lex.Keys() {
			if strings.Contains(k, key) || strings.Contains(key, k) {
				it, _ := lex.Lookup(k)
				return Match{Item: it, Key: k, Score: Similarity(key, k)}, true
			}
		}
	}

	best := Match{Score: -1}
	for _, k := range lex.Keys() {
		if s := Similarity(key, k); s > best.Score {
			it, _ := lex.Lookup(k)
			best = Match{Item: it, Key: k, Score: s}
		}
	}
	if best.Score >= MatchThreshold {
		return best, true
	}

	return Match{}, false
}
