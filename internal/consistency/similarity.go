package consistency

import "strings"

// nameSimilarity scores two normalized names in [0,1] using token overlap
// (Dice coefficient). A single-letter token matches the initial of a full
// token, so "a kumar" and "anand kumar" score 1.0 while unrelated names
// score near 0.
func nameSimilarity(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	used := make([]bool, len(tb))
	matches := 0
	for _, t := range ta {
		for j, u := range tb {
			if used[j] || !tokensMatch(t, u) {
				continue
			}
			used[j] = true
			matches++
			break
		}
	}

	return 2 * float64(matches) / float64(len(ta)+len(tb))
}

// tokensMatch reports token equality, treating a single letter as the
// initial of the other token.
func tokensMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) == 1 {
		return strings.HasPrefix(b, a)
	}
	if len(b) == 1 {
		return strings.HasPrefix(a, b)
	}
	return false
}
