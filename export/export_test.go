package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateReport() *gapscan.Report {
	return &gapscan.Report{
		ID:             "r1",
		Mode:           gapscan.ModeUpdate,
		PrimaryURL:     "https://mine.com/a",
		CompetitorURLs: []string{"https://other.com/b"},
		Gaps: []gapscan.GapRow{
			{
				MissingTitle: "Where to Stay",
				Evidence:     "Competitor covers: hotels near the old town",
				Reason:       "Competitors cover this section; the article does not.",
				Source:       "other.com",
				Category:     gapscan.CategoryMissingSection,
			},
		},
		Audit: &gapscan.Audit{Score: 76, Issues: []string{"Thin content"}},
		Compliance: []gapscan.ComplianceRow{
			{Check: "Word count", Primary: "600", BestCompetitor: "1800", Recommendation: "Increase depth."},
		},
	}
}

func planReport() *gapscan.Report {
	return &gapscan.Report{
		ID:             "r2",
		Mode:           gapscan.ModePlan,
		Title:          "Winter Guide",
		CompetitorURLs: []string{"https://a.com/x", "https://b.com/y"},
		Strategy: []gapscan.SectionCoverage{
			{Title: "Getting There", Key: "getting there", Competitors: 2, Sources: []string{"a.com", "b.com"}},
			{Title: "Where to Stay", Key: "where to stay", Competitors: 1, Sources: []string{"a.com"}},
		},
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := export.Write(&bytes.Buffer{}, updateReport(), "xlsx")

	assert.Equal(t, gapscan.EINVALID, gapscan.ErrorCode(err))
}

func TestWriteCSV_UpdateMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, updateReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"missing_title", "evidence", "reason", "source"}, records[0])
	assert.Equal(t, "Where to Stay", records[1][0])
	assert.Equal(t, "other.com", records[1][3])
}

func TestWriteCSV_PlanMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, planReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"recommended_section", "competitor_count", "sources"}, records[0])
	assert.Equal(t, []string{"Getting There", "2", "a.com; b.com"}, records[1])
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, updateReport()))

	var decoded gapscan.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "r1", decoded.ID)
	assert.Equal(t, gapscan.ModeUpdate, decoded.Mode)
	require.Len(t, decoded.Gaps, 1)
	assert.Equal(t, "Where to Stay", decoded.Gaps[0].MissingTitle)
}

func TestWriteMarkdown_UpdateMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteMarkdown(&buf, updateReport()))
	out := buf.String()

	assert.Contains(t, out, "# Content gap report: https://mine.com/a")
	assert.Contains(t, out, "## Gaps")
	assert.Contains(t, out, "| Where to Stay |")
	assert.Contains(t, out, "## On-page audit")
	assert.Contains(t, out, "Score: 76/100")
	assert.Contains(t, out, "## Compliance vs best competitor")
}

func TestWriteMarkdown_PlanMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteMarkdown(&buf, planReport()))
	out := buf.String()

	assert.Contains(t, out, "# Content plan: Winter Guide")
	assert.Contains(t, out, "## Recommended sections")
	assert.Contains(t, out, "- Getting There (2 competitors: a.com, b.com)")
	assert.NotContains(t, out, "## Gaps")
}

func TestWriteMarkdown_EscapesPipes(t *testing.T) {
	t.Parallel()

	report := updateReport()
	report.Gaps[0].Evidence = "uses | pipes"

	var buf bytes.Buffer
	require.NoError(t, export.WriteMarkdown(&buf, report))

	assert.Contains(t, buf.String(), `uses \| pipes`)
	assert.False(t, strings.Contains(buf.String(), "| uses | pipes |"))
}
