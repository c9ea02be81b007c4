package voice

import "strings"

// Similarity scores two normalized strings on a 0-1 scale. The score is
// the better of a character-level Jaro-Winkler comparison and a
// token-overlap ratio, so both "margherta" (typo) and "pizza margherita
// royale" (extra words) score well against "pizza margherita".
func Similarity(a, b string) float64 {
	jw := jaroWinkler(a, b)
	if to := tokenOverlap(a, b); to > jw {
		return to
	}
	return jw
}

// tokenOverlap is the Dice coefficient over the two token sets.
func tokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	set := make(map[string]bool, len(ta))
	for _, t := range ta {
		set[t] = true
	}
	common := 0
	for _, t := range tb {
		if set[t] {
			common++
			delete(set, t)
		}
	}
	return 2 * float64(common) / float64(len(ta)+len(tb))
}

// jaroWinkler computes Jaro-Winkler similarity: Jaro with a boost for a
// shared prefix (up to 4 characters, standard 0.1 scaling).
func jaroWinkler(a, b string) float64 {
	jaro := jaroSimilarity(a, b)

	prefix := 0
	for i := 0; i < minInt(len(a), len(b)) && i < 4; i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1-jaro)
}

func jaroSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := maxInt(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatch := make([]bool, len(a))
	bMatch := make([]bool, len(b))

	matches := 0
	for i := 0; i < len(a); i++ {
		start := maxInt(0, i-window)
		end := minInt(len(b), i+window+1)
		for j := start; j < end; j++ {
			if bMatch[j] || a[i] != b[j] {
				continue
			}
			aMatch[i] = true
			bMatch[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len(a); i++ {
		if !aMatch[i] {
			continue
		}
		for !bMatch[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
