package gapscan

import "strings"

// NoiseFilter classifies headings as structural noise: navigation,
// subscribe prompts, legal boilerplate, and other call-to-action chrome
// that should never enter a document's section map.
type NoiseFilter struct {
	phrases   []string
	minLength int
}

// NewNoiseFilter creates a NoiseFilter from the config's phrase list and
// minimum heading length. Phrases are matched in normalized form.
func NewNoiseFilter(cfg Config) *NoiseFilter {
	phrases := make([]string, 0, len(cfg.NoisePhrases))
	for _, p := range cfg.NoisePhrases {
		if norm := Normalize(p); norm != "" {
			phrases = append(phrases, norm)
		}
	}
	return &NoiseFilter{phrases: phrases, minLength: cfg.MinHeadingLength}
}

// IsNoise reports whether a heading should be excluded from analysis.
// A heading is noise if its normalized form is shorter than the minimum
// length or contains any configured boilerplate phrase.
func (f *NoiseFilter) IsNoise(heading string) bool {
	key := Normalize(heading)
	if len([]rune(key)) < f.minLength {
		return true
	}
	for _, p := range f.phrases {
		if strings.Contains(key, p) {
			return true
		}
	}
	return false
}
