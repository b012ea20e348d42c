package gapscan_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Why Visit In Winter", "why visit in winter"},
		{"collapses whitespace", "  best \t time\n to   go ", "best time to go"},
		{"folds dashes", "Pros - and - Cons", "pros and cons"},
		{"folds bullets and separators", "• Getting There | Top Tips", "getting there top tips"},
		{"keeps question mark", "Is it worth it?", "is it worth it?"},
		{"keeps ampersand and colon", "Tickets & Prices: 2025", "tickets & prices: 2025"},
		{"keeps parentheses", "Opening Hours (Summer)", "opening hours (summer)"},
		{"strips emoji", "Top Tips 🎉", "top tips"},
		{"empty", "", ""},
		{"only punctuation", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gapscan.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Why Visit — In Winter?",
		"Tickets & Prices: 2025",
		"  Mixed \t CASE  – text ",
	}

	for _, in := range inputs {
		once := gapscan.Normalize(in)
		assert.Equal(t, once, gapscan.Normalize(once))
	}
}

func TestIsQuestionShaped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"Is it worth visiting?", true},
		{"where to stay", true},
		{"How much does it cost", true},
		{"Getting there", false},
		{"what", false}, // single word, no question mark
		{"", false},
		{"Prices?", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gapscan.IsQuestionShaped(tt.in), "input: %q", tt.in)
	}
}
