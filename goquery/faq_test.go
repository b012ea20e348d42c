package goquery_test

import (
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructurer_QuestionsFromJSONLD(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@type": "FAQPage",
	"mainEntity": [
		{"@type": "Question", "name": "Is it worth visiting?", "acceptedAnswer": {"@type": "Answer", "text": "Yes."}},
		{"@type": "Question", "name": "How much does it cost?"}
	]
}
</script>
</head><body><main><h2>Getting There</h2></main></body></html>`

	s := goquery.NewStructurer(gapscan.DefaultConfig())
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	assert.Equal(t, []string{"Is it worth visiting?", "How much does it cost?"}, ds.Questions)
	assert.Contains(t, ds.Meta.SchemaTypes, "FAQPage")
}

func TestStructurer_QuestionsFromJSONLDGraph(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">
{
	"@graph": [
		{"@type": "Article", "headline": "Winter Guide"},
		{"@type": ["FAQPage", "WebPage"], "mainEntity": {"@type": "Question", "name": "When should you go?"}}
	]
}
</script>
</head><body></body></html>`

	s := goquery.NewStructurer(gapscan.DefaultConfig())
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	assert.Equal(t, []string{"When should you go?"}, ds.Questions)
	assert.Equal(t, []string{"Article", "FAQPage", "WebPage"}, ds.Meta.SchemaTypes)
}

func TestStructurer_InvalidJSONLDIgnored(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">{not valid json</script>
<script type="application/ld+json">{"@type": "Recipe"}</script>
</head><body></body></html>`

	s := goquery.NewStructurer(gapscan.DefaultConfig())
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	assert.Empty(t, ds.Questions)
	assert.Equal(t, []string{"Recipe"}, ds.Meta.SchemaTypes)
}

func TestStructurer_QuestionsFromDOM(t *testing.T) {
	t.Parallel()

	html := `<body><main>
	<h2>Getting There</h2>
	<section class="faq-section">
		<h3>Can you bring dogs?</h3>
		<p>Yes, on a lead.</p>
		<details><summary>Where should you park?</summary><p>Use the north lot.</p></details>
	</section>
	<div id="accordion-block">
		<button>Is there a student discount?</button>
	</div>
	<div class="faq">
		<h3>Prices</h3>
	</div>
</main></body>`

	s := goquery.NewStructurer(gapscan.DefaultConfig())
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	// "Prices" is inside an FAQ container but is not question-shaped.
	assert.Equal(t, []string{
		"Can you bring dogs?",
		"Where should you park?",
		"Is there a student discount?",
	}, ds.Questions)
}

func TestStructurer_QuestionSourcesDedupeInPriorityOrder(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">
{"@type": "FAQPage", "mainEntity": {"@type": "Question", "name": "Is it worth visiting?"}}
</script>
</head><body><main>
	<h2>Is it WORTH visiting?</h2>
	<h2>How much does it cost?</h2>
</main></body></html>`

	s := goquery.NewStructurer(gapscan.DefaultConfig())
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	// The JSON-LD casing wins; the heading variant is a normalized
	// duplicate. The second question heading still registers.
	assert.Equal(t, []string{"Is it worth visiting?", "How much does it cost?"}, ds.Questions)
}

func TestStructurer_QuestionCapEnforced(t *testing.T) {
	t.Parallel()

	cfg := gapscan.DefaultConfig()
	cfg.MaxFAQQuestions = 2

	html := `<body><main>
	<h2>Is it worth visiting?</h2>
	<h2>How much does it cost?</h2>
	<h2>When should you go?</h2>
</main></body>`

	s := goquery.NewStructurer(cfg)
	ds, err := s.Structure(html, "src")
	require.NoError(t, err)

	assert.Len(t, ds.Questions, 2)
}
