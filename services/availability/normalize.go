package availability

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// Normalize canonicalizes a free-text service name: lowercase, strip
// punctuation, collapse internal whitespace, trim. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWordPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// StrictEquals reports whether two names are the same after normalization.
// This is the ONLY equality allowed for already-booked exclusion: "2 Seater
// Sofa Cleaning" and "4 Seater Sofa Cleaning" must never collapse, so no
// fuzzy comparison is permitted here.
func StrictEquals(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// significantWords splits a normalized name into the words that carry
// matching signal, i.e. those strictly longer than floor characters.
func significantWords(normalized string, floor int) []string {
	var words []string
	for _, w := range strings.Fields(normalized) {
		if len(w) > floor {
			words = append(words, w)
		}
	}
	return words
}

// normalizeSet normalizes every name in the slice into a lookup set.
func normalizeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[Normalize(n)] = struct{}{}
	}
	return set
}
