package gapscan_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/stretchr/testify/assert"
)

func TestTermExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := gapscan.NewTermExtractor(gapscan.DefaultConfig())

	terms := e.Extract("The shuttle bus departs from the harbour; shuttle tickets cost 5 euros.")

	// Short tokens and stopwords drop out; duplicates keep first position.
	assert.Equal(t, []string{"shuttle", "departs", "harbour", "tickets", "cost", "euros"}, terms)
}

func TestTermExtractor_StopwordsFiltered(t *testing.T) {
	t.Parallel()

	e := gapscan.NewTermExtractor(gapscan.DefaultConfig())

	terms := e.Extract("What should they make from these during most other days")

	assert.Equal(t, []string{"days"}, terms)
}

func TestTermExtractor_CustomStopwords(t *testing.T) {
	t.Parallel()

	cfg := gapscan.DefaultConfig()
	cfg.Stopwords = append(cfg.Stopwords, "castle")

	e := gapscan.NewTermExtractor(cfg)

	terms := e.Extract("The castle gardens open at dawn")

	assert.Equal(t, []string{"gardens", "open", "dawn"}, terms)
}

func TestTermExtractor_Empty(t *testing.T) {
	t.Parallel()

	e := gapscan.NewTermExtractor(gapscan.DefaultConfig())

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("a an of to"))
}
