// Package textnorm canonicalises free text before keyword matching.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctuation is the set of runes removed by Normalize.
const punctuation = ".,;:!?\"'-–—()[]{}<>…"

var stripper = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len([]rune(punctuation)))
	for _, r := range punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// Normalize lowercases, NFC-composes, strips punctuation and collapses
// whitespace. Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = norm.NFC.String(s)
	s = stripper.Replace(s)
	s = strings.Join(strings.Fields(s), " ")

	// Removing a rune can place a base letter next to a combining mark.
	return norm.NFC.String(s)
}
