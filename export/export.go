// Package export renders analysis reports as CSV, JSON, or Markdown for
// the UI and spreadsheet consumers. Gap rows map to flat records without
// transformation.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/gapscan"
)

// Formats supported by Write.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Write renders the report in the named format.
func Write(w io.Writer, report *gapscan.Report, format string) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatMarkdown:
		return WriteMarkdown(w, report)
	}
	return gapscan.Errorf(gapscan.EINVALID, "unknown export format %q", format)
}

// WriteCSV renders the report's tabular core: gap rows in update mode,
// strategy recommendations in plan mode.
func WriteCSV(w io.Writer, report *gapscan.Report) error {
	cw := csv.NewWriter(w)

	if report.Mode == gapscan.ModePlan {
		if err := cw.Write([]string{"recommended_section", "competitor_count", "sources"}); err != nil {
			return err
		}
		for _, rec := range report.Strategy {
			row := []string{rec.Title, strconv.Itoa(rec.Competitors), strings.Join(rec.Sources, "; ")}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	if err := cw.Write([]string{"missing_title", "evidence", "reason", "source"}); err != nil {
		return err
	}
	for _, gap := range report.Gaps {
		if err := cw.Write([]string{gap.MissingTitle, gap.Evidence, gap.Reason, gap.Source}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the full report as indented JSON.
func WriteJSON(w io.Writer, report *gapscan.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

// WriteMarkdown renders a readable report for editors.
func WriteMarkdown(w io.Writer, report *gapscan.Report) error {
	var sb strings.Builder

	switch report.Mode {
	case gapscan.ModePlan:
		fmt.Fprintf(&sb, "# Content plan: %s\n", report.Title)
	default:
		fmt.Fprintf(&sb, "# Content gap report: %s\n", report.PrimaryURL)
	}
	fmt.Fprintf(&sb, "\nCompetitors: %s\n", strings.Join(report.CompetitorURLs, ", "))

	if len(report.Gaps) > 0 {
		sb.WriteString("\n## Gaps\n\n")
		sb.WriteString("| Missing | Evidence | Reason | Source |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, gap := range report.Gaps {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				cell(gap.MissingTitle), cell(gap.Evidence), cell(gap.Reason), cell(gap.Source))
		}
	}

	if len(report.Strategy) > 0 {
		sb.WriteString("\n## Recommended sections\n\n")
		for _, rec := range report.Strategy {
			fmt.Fprintf(&sb, "- %s (%d competitors: %s)\n",
				rec.Title, rec.Competitors, strings.Join(rec.Sources, ", "))
		}
	}

	if report.Audit != nil {
		sb.WriteString("\n## On-page audit\n")
		fmt.Fprintf(&sb, "\nScore: %d/100\n", report.Audit.Score)
		writeList(&sb, "Issues", report.Audit.Issues)
		writeList(&sb, "Recommendations", report.Audit.Recommendations)
		writeList(&sb, "Strengths", report.Audit.Strengths)
	}

	if len(report.Compliance) > 0 {
		sb.WriteString("\n## Compliance vs best competitor\n\n")
		sb.WriteString("| Check | Primary | Best competitor | Recommendation |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, row := range report.Compliance {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				cell(row.Check), cell(row.Primary), cell(row.BestCompetitor), cell(row.Recommendation))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeList(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n### %s\n\n", header)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}

// cell escapes pipes so free text cannot break the table layout.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
