package template

import "strings"

// closest returns the candidate most similar to name for a "did you mean"
// hint. Similarity is the length of the common prefix plus the common suffix,
// ignoring case. A candidate equal to name ignoring case always wins. It
// returns false unless the best candidate shares at least half of name.
func closest(name string, candidates []string) (string, bool) {
	lower := strings.ToLower(name)

	best, bestScore := "", 0
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == lower {
			return c, true
		}

		score := min(prefixLen(lower, lc)+suffixLen(lower, lc), len(lower), len(lc))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore == 0 || bestScore*2 < len(lower) {
		return "", false
	}
	return best, true
}

func prefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func suffixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
