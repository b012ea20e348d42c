package gapscan

import (
	"encoding/json"
	"os"
	"strings"
)

// Config holds the tunable rule tables and bounding constants for the
// analysis core. All fields are overridable from a JSON file without code
// changes; zero values fall back to the defaults.
type Config struct {
	// NoisePhrases lists boilerplate fragments (matched against normalized
	// headings by substring) that disqualify a heading from analysis.
	NoisePhrases []string `json:"noise_phrases"`

	// Stopwords are excluded from term extraction. Beyond function words,
	// this should include the dominant topic words of the page's own
	// subject so gap terms reflect new topics, not restatements.
	Stopwords []string `json:"stopwords"`

	// Synonyms maps a normalized heading key to the canonical key it should
	// be grouped under (e.g. "advantages" -> "pros"). Empty by default:
	// only exact post-normalization equality counts as a match.
	Synonyms map[string]string `json:"synonyms"`

	// MinHeadingLength is the minimum normalized heading length; anything
	// shorter is treated as structural noise.
	MinHeadingLength int `json:"min_heading_length"`

	// MinTermLength is the minimum token length for term extraction.
	MinTermLength int `json:"min_term_length"`

	// MinTermGap is the minimum number of distinct missing terms required
	// before a shared section is reported as a content-level gap.
	MinTermGap int `json:"min_term_gap"`

	// MinFAQGap is the minimum number of unanswered competitor questions
	// required before an FAQ gap row is emitted.
	MinFAQGap int `json:"min_faq_gap"`

	// MaxFAQQuestions caps the distinct questions kept per document.
	MaxFAQQuestions int `json:"max_faq_questions"`

	// MaxEvidenceItems caps the titles, questions, or terms listed in a
	// single gap row's evidence.
	MaxEvidenceItems int `json:"max_evidence_items"`

	// MaxSectionChunks caps the text blocks attributed to one section.
	MaxSectionChunks int `json:"max_section_chunks"`

	// MaxSectionText caps the attributed text per section, in bytes.
	MaxSectionText int `json:"max_section_text"`

	// MaxBullets caps the list items kept per section.
	MaxBullets int `json:"max_bullets"`

	// MaxBulletLength excludes list items longer than this from bullets.
	MaxBulletLength int `json:"max_bullet_length"`

	// MinQuestionLength and MaxQuestionLength bound the plausible length of
	// an extracted FAQ question.
	MinQuestionLength int `json:"min_question_length"`
	MaxQuestionLength int `json:"max_question_length"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		NoisePhrases: []string{
			"subscribe", "newsletter", "sign up", "sign in", "log in",
			"contact us", "get in touch", "follow us", "share this",
			"related articles", "related posts", "you may also like",
			"read more", "read next", "recommended for you",
			"leave a comment", "comments", "advertisement",
			"terms of service", "terms & conditions", "privacy policy",
			"cookie", "disclaimer", "download our app", "join our",
			"table of contents", "back to top",
		},
		Stopwords: []string{
			"about", "above", "after", "again", "against", "also", "among",
			"because", "been", "before", "being", "below", "best", "between",
			"both", "cannot", "could", "does", "doing", "down", "during",
			"each", "every", "from", "further", "have", "having", "here",
			"hers", "himself", "into", "itself", "just", "like", "made",
			"make", "many", "more", "most", "much", "need", "often", "only",
			"other", "over", "same", "should", "some", "such", "than",
			"that", "their", "them", "then", "there", "these", "they",
			"this", "those", "through", "under", "until", "very", "well",
			"were", "what", "when", "where", "whether", "which", "while",
			"will", "with", "within", "without", "would", "your", "yours",
		},
		Synonyms:          map[string]string{},
		MinHeadingLength:  6,
		MinTermLength:     4,
		MinTermGap:        4,
		MinFAQGap:         1,
		MaxFAQQuestions:   25,
		MaxEvidenceItems:  8,
		MaxSectionChunks:  40,
		MaxSectionText:    8000,
		MaxBullets:        15,
		MaxBulletLength:   160,
		MinQuestionLength: 5,
		MaxQuestionLength: 140,
	}
}

// LoadConfig reads a JSON config file and merges it over the defaults.
// Absent fields keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, Errorf(ENOTFOUND, "config file %q not found", path)
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, Errorf(EINVALID, "invalid config file %q: %v", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills zero-valued numeric fields so a sparse override
// file cannot disable the bounding constants entirely.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.MinHeadingLength == 0 {
		c.MinHeadingLength = def.MinHeadingLength
	}
	if c.MinTermLength == 0 {
		c.MinTermLength = def.MinTermLength
	}
	if c.MinTermGap == 0 {
		c.MinTermGap = def.MinTermGap
	}
	if c.MinFAQGap == 0 {
		c.MinFAQGap = def.MinFAQGap
	}
	if c.MaxFAQQuestions == 0 {
		c.MaxFAQQuestions = def.MaxFAQQuestions
	}
	if c.MaxEvidenceItems == 0 {
		c.MaxEvidenceItems = def.MaxEvidenceItems
	}
	if c.MaxSectionChunks == 0 {
		c.MaxSectionChunks = def.MaxSectionChunks
	}
	if c.MaxSectionText == 0 {
		c.MaxSectionText = def.MaxSectionText
	}
	if c.MaxBullets == 0 {
		c.MaxBullets = def.MaxBullets
	}
	if c.MaxBulletLength == 0 {
		c.MaxBulletLength = def.MaxBulletLength
	}
	if c.MinQuestionLength == 0 {
		c.MinQuestionLength = def.MinQuestionLength
	}
	if c.MaxQuestionLength == 0 {
		c.MaxQuestionLength = def.MaxQuestionLength
	}
	if c.Synonyms == nil {
		c.Synonyms = map[string]string{}
	}
}

// CanonicalKey normalizes a heading and applies the synonym table, so
// configured equivalence classes share one key.
func (c Config) CanonicalKey(title string) string {
	key := Normalize(title)
	if canonical, ok := c.Synonyms[key]; ok && canonical != "" {
		return Normalize(canonical)
	}
	return key
}

// PlausibleQuestion reports whether text is question-shaped and of
// plausible question length.
func (c Config) PlausibleQuestion(s string) bool {
	n := len([]rune(strings.TrimSpace(s)))
	return n >= c.MinQuestionLength && n <= c.MaxQuestionLength && IsQuestionShaped(s)
}
