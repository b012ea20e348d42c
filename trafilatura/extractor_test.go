package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/mock"
	"github.com/fwojciec/gapscan/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements gapscan.Extractor at compile time.
var _ gapscan.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Winter Guide - Travel Site</title></head>
<body>
<nav><a href="/">Home</a><a href="/guides">Guides</a></nav>
<article>
<h1>Winter Guide</h1>
<p>This is the main article content about visiting in winter, with enough
substance for the extractor to treat it as the primary region of the page.</p>
<p>A second paragraph keeps the content region clearly dominant over the
navigation and footer boilerplate surrounding it.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

	ext := trafilatura.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "main article content")
	assert.NotContains(t, result.ContentHTML, "Copyright 2025")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()

	_, err := ext.Extract("   ")

	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode(err))
}

func TestExtractor_Extract_FallbackConsulted(t *testing.T) {
	t.Parallel()

	fallback := &mock.Extractor{
		ExtractFn: func(html string) (*gapscan.ExtractResult, error) {
			return &gapscan.ExtractResult{Title: "Fallback", ContentHTML: "<p>fallback</p>"}, nil
		},
	}

	ext := trafilatura.NewExtractor(trafilatura.WithFallback(fallback))

	// Markup with no extractable article content forces the fallback.
	result, err := ext.Extract("<html><body><nav>only chrome</nav></body></html>")

	require.NoError(t, err)
	assert.Equal(t, "Fallback", result.Title)
}
