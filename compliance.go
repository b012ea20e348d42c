package gapscan

import "strconv"

// ComplianceRow compares one page metric between the primary document and
// the best competitor (highest word count).
type ComplianceRow struct {
	Check          string `json:"check"`
	Primary        string `json:"primary"`
	BestCompetitor string `json:"best_competitor"`
	Recommendation string `json:"recommendation"`
}

// Compliance builds the metric comparison table against the best
// competitor. Returns nil when there are no analyzable competitors.
func Compliance(primary *DocumentStructure, competitors []Competitor) []ComplianceRow {
	var best *DocumentStructure
	for _, comp := range competitors {
		if comp.Structure == nil {
			continue
		}
		if best == nil || comp.Structure.Meta.WordCount > best.Meta.WordCount {
			best = comp.Structure
		}
	}
	if best == nil || primary == nil {
		return nil
	}

	p, b := primary.Meta, best.Meta
	row := func(check string, pv, bv any, rec string) ComplianceRow {
		return ComplianceRow{Check: check, Primary: toString(pv), BestCompetitor: toString(bv), Recommendation: rec}
	}

	return []ComplianceRow{
		row("Word count", p.WordCount, b.WordCount,
			"Increase depth only where competitors have meaningful sections."),
		row("H1 count", p.H1Count, b.H1Count, "Keep exactly one H1."),
		row("H2 count", p.H2Count, b.H2Count,
			"Add the missing H2 sections competitors use, not CTAs or newsletters."),
		row("H3 count", p.H3Count, b.H3Count,
			"Use H3 for sub-points inside key sections."),
		row("FAQ present", len(primary.Questions) > 0, len(best.Questions) > 0,
			"Add a short FAQ block if competitors have one."),
		row("Tables", p.TableCount, b.TableCount,
			"Add one simple table if the competitor uses one."),
		row("Images", p.ImageCount, b.ImageCount,
			"Match the competitor's visual support; few strong images beat many."),
		row("Videos", p.VideoCount, b.VideoCount,
			"Optional: add a short video only if it helps explain the topic."),
		row("Map embed", p.HasMap, b.HasMap,
			"If the competitor embeds a map, add one map section."),
	}
}

// MediaRow reports one media element a competitor uses more than the
// primary document does.
type MediaRow struct {
	MediaType      string `json:"media_type"`
	Primary        int    `json:"primary"`
	Competitor     int    `json:"competitor"`
	Source         string `json:"source"`
	Recommendation string `json:"recommendation"`
}

// MediaComparison lists media elements where any competitor outweighs the
// primary document, one row per deficit per competitor.
func MediaComparison(primary *DocumentStructure, competitors []Competitor) []MediaRow {
	if primary == nil {
		return nil
	}

	var rows []MediaRow
	for _, comp := range competitors {
		if comp.Structure == nil {
			continue
		}
		pm, cm := primary.Meta, comp.Structure.Meta

		checks := []struct {
			name string
			p, c int
			rec  string
		}{
			{"Images", pm.ImageCount, cm.ImageCount, "Add supporting images."},
			{"Videos", pm.VideoCount, cm.VideoCount, "Consider a short explanatory video."},
			{"Tables", pm.TableCount, cm.TableCount, "Add a comparison or summary table."},
			{"Map embed", boolToInt(pm.HasMap), boolToInt(cm.HasMap), "Embed a location map."},
		}

		for _, c := range checks {
			if c.p < c.c {
				rows = append(rows, MediaRow{
					MediaType:      c.name,
					Primary:        c.p,
					Competitor:     c.c,
					Source:         comp.Label,
					Recommendation: c.rec,
				})
			}
		}
	}

	return rows
}

func toString(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
