package gapscan

// Structurer turns raw markup into a normalized document structure.
// Implementations must degrade gracefully: malformed or empty markup
// yields an empty DocumentStructure, not an error, so a single messy
// competitor page never aborts a batch.
type Structurer interface {
	// Structure parses markup and returns the document's outline,
	// FAQ questions, and page summaries. source identifies the
	// document's origin (URL or host).
	Structure(markup, source string) (*DocumentStructure, error)
}
