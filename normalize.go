package gapscan

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes heading text for cross-document matching.
// It lowercases, collapses whitespace runs to a single space, trims, and
// folds punctuation that carries no semantic distinction (dashes, bullets,
// decorative separators) into whitespace. Alphanumerics, '?', '&',
// parentheses, and ':' survive: '?' distinguishes FAQ-style headings and
// must remain visible to question detection.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '?' || r == '&' || r == '(' || r == ')' || r == ':':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// interrogatives are the leading words that mark a heading as
// question-shaped even without a trailing question mark.
var interrogatives = map[string]bool{
	"what": true, "why": true, "how": true, "when": true, "where": true,
	"which": true, "who": true, "whom": true, "whose": true,
	"can": true, "could": true, "should": true, "will": true, "would": true,
	"do": true, "does": true, "did": true,
	"is": true, "are": true, "was": true, "were": true,
}

// IsQuestionShaped reports whether text reads like a question: it ends with
// a question mark or begins with an interrogative word.
func IsQuestionShaped(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasSuffix(s, "?") {
		return true
	}
	fields := strings.Fields(strings.ToLower(s))
	return len(fields) > 1 && interrogatives[fields[0]]
}
