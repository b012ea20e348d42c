// Package trafilatura provides main-content extraction backed by
// go-trafilatura, with an optional fallback extractor for pages it
// cannot handle.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/gapscan"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements gapscan.Extractor at compile time.
var _ gapscan.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	fallback gapscan.Extractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback sets an extractor consulted when trafilatura fails or
// produces no content (e.g. readability.Extractor).
func WithFallback(e gapscan.Extractor) Option {
	return func(x *Extractor) {
		x.fallback = e
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*gapscan.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, gapscan.Errorf(gapscan.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil || result.ContentNode == nil {
		return e.fallbackExtract(rawHTML, err)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return e.fallbackExtract(rawHTML, err)
	}

	return &gapscan.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) fallbackExtract(rawHTML string, err error) (*gapscan.ExtractResult, error) {
	if e.fallback != nil {
		return e.fallback.Extract(rawHTML)
	}
	if err != nil {
		return nil, err
	}
	return nil, gapscan.Errorf(gapscan.EINVALID, "no extractable content")
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
