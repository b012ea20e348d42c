package gapscan_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/stretchr/testify/assert"
)

func TestAuditPage_HealthyPage(t *testing.T) {
	t.Parallel()

	ds := structureOf("src",
		heading(2, "Why visit in winter?"),
		para("Updated for the current season with new prices."),
		heading(2, "Getting There"),
		listItem("Take the coastal train"),
		heading(2, "Where to Stay"),
		para("Hotels cluster near the old town."),
	)
	ds.Meta = gapscan.PageMeta{
		Title:           "Winter Guide",
		MetaDescription: "Everything you need to plan a winter trip.",
		WordCount:       1200,
		H1Count:         1,
		H2Count:         3,
		SchemaTypes:     []string{"Article", "FAQPage", "BreadcrumbList"},
	}
	ds.AddQuestion("Why visit in winter?", 25)

	audit := gapscan.AuditPage(ds)

	assert.Empty(t, audit.Issues)
	assert.Equal(t, 100, audit.Score)
	assert.Contains(t, audit.Strengths, "Uses question-style headings")
	assert.Contains(t, audit.Strengths, "Uses lists or bullet points")
	assert.Contains(t, audit.Strengths, "Strong content depth")
	assert.Contains(t, audit.Strengths, "Shows a freshness or update signal")
}

func TestAuditPage_FlagsMissingFundamentals(t *testing.T) {
	t.Parallel()

	ds := gapscan.NewDocumentStructure("src")

	audit := gapscan.AuditPage(ds)

	assert.Contains(t, audit.Issues, "Missing title tag")
	assert.Contains(t, audit.Issues, "Missing meta description")
	assert.Contains(t, audit.Issues, "Missing H1")
	assert.Contains(t, audit.Issues, "Thin content")
	assert.Contains(t, audit.Issues, "Weak content structure")
	assert.Contains(t, audit.Issues, "No structured data detected")
	assert.Equal(t, len(audit.Issues), len(audit.Recommendations))
}

func TestAuditPage_LengthChecks(t *testing.T) {
	t.Parallel()

	ds := gapscan.NewDocumentStructure("src")
	ds.Meta.Title = strings.Repeat("x", 70)
	ds.Meta.MetaDescription = strings.Repeat("y", 200)
	ds.Meta.H1Count = 2

	audit := gapscan.AuditPage(ds)

	assert.Contains(t, audit.Issues, "Title too long")
	assert.Contains(t, audit.Issues, "Meta description too long")
	assert.Contains(t, audit.Issues, "Multiple H1s")
}

func TestAuditPage_ScoreFloor(t *testing.T) {
	t.Parallel()

	// An empty document fails enough checks to push 100-12*issues below
	// zero; the score clamps instead of going negative.
	audit := gapscan.AuditPage(gapscan.NewDocumentStructure("src"))

	assert.Greater(t, 12*len(audit.Issues), 100)
	assert.Equal(t, 0, audit.Score)
}

func TestAuditPage_SchemaRecommendations(t *testing.T) {
	t.Parallel()

	ds := gapscan.NewDocumentStructure("src")
	ds.Meta.SchemaTypes = []string{"Article"}

	audit := gapscan.AuditPage(ds)

	assert.NotContains(t, audit.Issues, "No structured data detected")
	assert.Contains(t, audit.Recommendations, "Add FAQPage markup for the Q&A block.")
	assert.Contains(t, audit.Recommendations, "Add BreadcrumbList markup for better result display.")
	assert.NotContains(t, audit.Recommendations, "Add Article or BlogPosting markup.")
}
