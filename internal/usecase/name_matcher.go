package usecase

import "strings"

// maxTokenEditDistance is the tolerance allowed between two matching tokens
const maxTokenEditDistance = 2

// NamesMatch reports whether two product names denote the same product.
// Every token of each name must be within two edits of some token of the
// other name, so word order and small misspellings are tolerated but a name
// never matches a strict subset of its tokens.
func NamesMatch(a, b string) bool {
	aTokens := tokenize(a)
	bTokens := tokenize(b)
	return covers(aTokens, bTokens) && covers(bTokens, aTokens)
}

// covers reports whether every token of from has a close token in to.
func covers(from, to []string) bool {
	for _, f := range from {
		found := false
		for _, t := range to {
			if levenshteinDistance(f, t) <= maxTokenEditDistance {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// tokenize lower-cases a name and splits it on whitespace
func tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rows are enough for the DP
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
