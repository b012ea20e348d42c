package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements gapscan.Converter at compile time.
var _ gapscan.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<h2>Getting There</h2><p>Trains run <strong>hourly</strong>.</p>`)
	require.NoError(t, err)

	assert.Contains(t, md, "## Getting There")
	assert.Contains(t, md, "**hourly**")
}

func TestConverter_Convert_Lists(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<ul><li>Buy tickets online</li><li>Arrive early</li></ul>`)
	require.NoError(t, err)

	assert.Contains(t, md, "- Buy tickets online")
	assert.Contains(t, md, "- Arrive early")
}

func TestConverter_Convert_Tables(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert(`<table>
<tr><th>Ticket</th><th>Price</th></tr>
<tr><td>Adult</td><td>20</td></tr>
</table>`)
	require.NoError(t, err)

	assert.Contains(t, md, "| Ticket | Price |")
	assert.Contains(t, md, "| Adult | 20 |")
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	_, err := c.Convert("  ")

	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode(err))
}
