// Package textutil normalizes free text for case- and accent-insensitive matching.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics, so "Écran" and "ecran" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ContainsFold reports whether needle occurs in haystack after folding both.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAnyFold reports whether any needle occurs in haystack after folding.
func ContainsAnyFold(haystack string, needles ...string) bool {
	h := Fold(haystack)
	for _, n := range needles {
		if strings.Contains(h, Fold(n)) {
			return true
		}
	}
	return false
}
