// Package textmatch implements the free-text filter used by the transaction
// listing: accent-insensitive substring matching with a typo tolerance based
// on Damerau-Levenshtein distance. It runs over already-fetched rows, so the
// quadratic DP cost per token is acceptable.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the input and strips diacritics, so "Consulta" and
// "consultá" compare equal.
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		// Transform failures only happen on malformed UTF-8; fall back to
		// the raw string rather than dropping the row from results.
		folded = s
	}
	return strings.ToLower(folded)
}

// Matches reports whether every whitespace-delimited token of query is found
// in haystack, either as a substring or as a close typo (edit distance at
// most max(1, len(token)/3)) of one of the haystack's words. An empty or
// whitespace-only query matches everything.
func Matches(haystack, query string) bool {
	tokens := strings.Fields(Normalize(query))
	if len(tokens) == 0 {
		return true
	}

	normalized := Normalize(haystack)
	words := strings.Fields(normalized)

	for _, token := range tokens {
		if !tokenMatches(normalized, words, token) {
			return false
		}
	}
	return true
}

func tokenMatches(haystack string, words []string, token string) bool {
	if strings.Contains(haystack, token) {
		return true
	}

	tolerance := len(token) / 3
	if tolerance < 1 {
		tolerance = 1
	}
	for _, word := range words {
		if editDistance(token, word) <= tolerance {
			return true
		}
	}
	return false
}

// editDistance computes the Damerau-Levenshtein distance between two strings
// with unit cost for insertion, deletion, substitution and transposition.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,       // deletion
				curr[j-1]+1,     // insertion
				prev[j-1]+cost,  // substitution
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := prev2[j-2] + 1; t < curr[j] { // transposition
					curr[j] = t
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
