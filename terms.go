package gapscan

import (
	"strings"
	"unicode"
)

// TermExtractor tokenizes section text into significant lexical terms.
// Matching is purely lexical: lowercase alphanumeric runs, minimum length,
// stopword-filtered. Ordering is first-occurrence order, not frequency,
// so identical input always yields identical output.
type TermExtractor struct {
	minLength int
	stopwords map[string]bool
}

// NewTermExtractor creates a TermExtractor from the config's stopword list
// and minimum term length.
func NewTermExtractor(cfg Config) *TermExtractor {
	stop := make(map[string]bool, len(cfg.Stopwords))
	for _, w := range cfg.Stopwords {
		stop[strings.ToLower(w)] = true
	}
	return &TermExtractor{minLength: cfg.MinTermLength, stopwords: stop}
}

// Extract returns the distinct significant terms of text in order of first
// occurrence.
func (e *TermExtractor) Extract(text string) []string {
	var terms []string
	seen := make(map[string]bool)

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, tok := range tokens {
		if len([]rune(tok)) < e.minLength || e.stopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		terms = append(terms, tok)
	}

	return terms
}
