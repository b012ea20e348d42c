package readability_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements gapscan.Extractor at compile time.
var _ gapscan.Extractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Winter Guide</title></head>
<body>
<article>
<h1>Winter Guide</h1>
<p>This is a long enough paragraph of real article content for the
readability heuristics to identify it as the main text of the page, rather
than dismissing the document as boilerplate.</p>
<p>Another paragraph of body text reinforces the content region.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Winter Guide", result.Title)
	assert.Contains(t, result.ContentHTML, "real article content")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()

	_, err := ext.Extract("")

	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode(err))
}
