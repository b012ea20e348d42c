package gapscan

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Gap categories, ordered by editorial priority in the rule table below.
const (
	CategoryComparison     = "comparison"
	CategoryFAQ            = "faq"
	CategoryMissingSection = "missing_section"
	CategoryContentDepth   = "content_depth"
	CategoryUnanalyzed     = "unanalyzed"
)

// GapRule parameterizes one gap category: its report priority, the fixed
// reason attached to its rows, and the trigger words that promote a
// missing section into it. Rule changes are data edits, not logic forks.
type GapRule struct {
	Category string
	Priority int
	Reason   string
	Triggers []string
}

// DefaultGapRules returns the built-in rule table. Competitive-positioning
// gaps sort first, then FAQ gaps, then generic missing sections, then
// content-level gaps; marker rows for unanalyzable competitors sort last.
func DefaultGapRules() []GapRule {
	return []GapRule{
		{
			Category: CategoryComparison,
			Priority: 1,
			Reason:   "Competitors position this topic against alternatives; the article has no comparison coverage.",
			Triggers: []string{"vs", "versus", "comparison", "compare", "compared", "alternatives"},
		},
		{
			Category: CategoryFAQ,
			Priority: 2,
			Reason:   "Competitors answer reader questions the article does not address.",
		},
		{
			Category: CategoryMissingSection,
			Priority: 3,
			Reason:   "Competitors cover this section; the article does not.",
		},
		{
			Category: CategoryContentDepth,
			Priority: 4,
			Reason:   "The shared section covers fewer topics than the competitor's version.",
		},
		{
			Category: CategoryUnanalyzed,
			Priority: 5,
			Reason:   "The competitor page could not be analyzed.",
		},
	}
}

// GapRow is one reported difference between the primary document and a
// competitor. Rows are flat records with stable field names, suitable for
// direct tabular rendering or serialization.
type GapRow struct {
	MissingTitle string `json:"missing_title"`
	Evidence     string `json:"evidence"`
	Reason       string `json:"reason"`
	Source       string `json:"source"`
	Category     string `json:"category"`
}

// Competitor pairs a structured competitor document with its display label.
type Competitor struct {
	Structure *DocumentStructure
	Label     string
}

// SourceLabel derives a competitor display name from its origin URL:
// the host without a leading "www.". Unparseable input is returned as-is.
func SourceLabel(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(rawURL)
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// UnanalyzedRow builds the marker row for a competitor that failed to
// fetch or parse. Failures local to one competitor never abort the batch.
func UnanalyzedRow(label, detail string) GapRow {
	return GapRow{
		MissingTitle: "could not analyze",
		Evidence:     detail,
		Reason:       "The competitor page could not be analyzed.",
		Source:       label,
		Category:     CategoryUnanalyzed,
	}
}

// Differ computes the ranked, de-duplicated gap list between one primary
// document and N competitor documents.
type Differ struct {
	cfg   Config
	rules []GapRule
	byCat map[string]GapRule
	terms *TermExtractor
}

// NewDiffer creates a Differ with the default rule table.
func NewDiffer(cfg Config) *Differ {
	return NewDifferWithRules(cfg, DefaultGapRules())
}

// NewDifferWithRules creates a Differ with a custom rule table.
func NewDifferWithRules(cfg Config, rules []GapRule) *Differ {
	byCat := make(map[string]GapRule, len(rules))
	for _, r := range rules {
		byCat[r.Category] = r
	}
	return &Differ{
		cfg:   cfg,
		rules: rules,
		byCat: byCat,
		terms: NewTermExtractor(cfg),
	}
}

// Diff compares the primary structure against each competitor and returns
// gap rows ordered by category priority. Output is fully deterministic for
// a fixed input set: rows are generated in competitor order and document
// order, de-duplicated by (normalized title, normalized source), then
// stably sorted by the rule table's priorities.
//
// An empty competitor contributes zero rows; an empty primary yields the
// maximal gap set.
func (d *Differ) Diff(primary *DocumentStructure, competitors []Competitor) []GapRow {
	if primary == nil {
		primary = NewDocumentStructure("")
	}

	var rows []GapRow
	for _, comp := range competitors {
		if comp.Structure == nil {
			continue
		}
		rows = append(rows, d.missingSections(primary, comp)...)
		rows = append(rows, d.missingQuestions(primary, comp)...)
		rows = append(rows, d.contentGaps(primary, comp)...)
	}

	rows = dedupeRows(rows)

	sort.SliceStable(rows, func(i, j int) bool {
		return d.priority(rows[i].Category) < d.priority(rows[j].Category)
	})

	return rows
}

func (d *Differ) priority(category string) int {
	if r, ok := d.byCat[category]; ok {
		return r.Priority
	}
	return len(d.rules) + 1
}

// missingSections reports competitor sections absent from the primary.
// When a missing section's parent is also missing, the child is collapsed
// into the parent's row: only the shallowest missing ancestor of a missing
// subtree is reported, with descendant titles preserved as evidence.
func (d *Differ) missingSections(primary *DocumentStructure, comp Competitor) []GapRow {
	var rows []GapRow

	for _, key := range comp.Structure.SectionOrder {
		if primary.HasSection(key) {
			continue
		}
		sec := comp.Structure.Sections[key]
		if sec.ParentKey != "" && !primary.HasSection(sec.ParentKey) {
			// Reported implicitly as part of its missing parent.
			continue
		}

		rows = append(rows, GapRow{
			MissingTitle: sec.Title,
			Evidence:     d.sectionEvidence(primary, comp.Structure, sec),
			Reason:       d.sectionReason(key),
			Source:       comp.Label,
			Category:     d.sectionCategory(key),
		})
	}

	return rows
}

// sectionCategory promotes a missing section into the comparison category
// when its key carries a trigger word; otherwise it is a generic missing
// section.
func (d *Differ) sectionCategory(key string) string {
	for _, rule := range d.rules {
		if matchesTriggers(key, rule.Triggers) {
			return rule.Category
		}
	}
	return CategoryMissingSection
}

func (d *Differ) sectionReason(key string) string {
	return d.byCat[d.sectionCategory(key)].Reason
}

// matchesTriggers reports whether any trigger appears in the normalized
// key: single-word triggers must match a whole word, multi-word triggers
// by substring.
func matchesTriggers(key string, triggers []string) bool {
	if len(triggers) == 0 {
		return false
	}
	words := strings.Fields(key)
	for _, trig := range triggers {
		if strings.Contains(trig, " ") {
			if strings.Contains(key, trig) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == trig {
				return true
			}
		}
	}
	return false
}

// sectionEvidence summarizes what the competitor has under a missing
// section: the titles of its missing descendants in document order, or a
// short text excerpt when the section has no subtree.
func (d *Differ) sectionEvidence(primary, comp *DocumentStructure, sec *Section) string {
	var titles []string
	for _, key := range comp.SectionOrder {
		if primary.HasSection(key) {
			continue
		}
		if key != sec.Key && descendsFrom(comp, key, sec.Key) {
			titles = append(titles, comp.Sections[key].Title)
		}
	}

	if len(titles) > 0 {
		return "Competitor structures this as: " + joinBounded(titles, d.cfg.MaxEvidenceItems)
	}
	if excerpt := truncate(sec.Text, 140); excerpt != "" {
		return "Competitor covers: " + excerpt
	}
	return "Section present on competitor page."
}

// descendsFrom reports whether key sits anywhere under ancestor in the
// competitor's parent map. The walk is bounded by the section count to
// stay safe against irregular parent chains.
func descendsFrom(ds *DocumentStructure, key, ancestor string) bool {
	for hops := 0; hops <= len(ds.Sections); hops++ {
		sec, ok := ds.Sections[key]
		if !ok || sec.ParentKey == "" {
			return false
		}
		if sec.ParentKey == ancestor {
			return true
		}
		key = sec.ParentKey
	}
	return false
}

// missingQuestions emits at most one FAQ row per competitor, listing the
// competitor questions with no normalized match in the primary.
func (d *Differ) missingQuestions(primary *DocumentStructure, comp Competitor) []GapRow {
	var missing []string
	for _, q := range comp.Structure.Questions {
		if !primary.HasQuestion(q) {
			missing = append(missing, q)
		}
	}
	if len(missing) < d.cfg.MinFAQGap || len(missing) == 0 {
		return nil
	}

	return []GapRow{{
		MissingTitle: "FAQ coverage",
		Evidence:     "Unanswered questions: " + joinBounded(missing, d.cfg.MaxEvidenceItems),
		Reason:       d.byCat[CategoryFAQ].Reason,
		Source:       comp.Label,
		Category:     CategoryFAQ,
	}}
}

// contentGaps reports shared sections where the competitor's text carries
// at least MinTermGap significant terms absent from the primary's text for
// the same key. Smaller differences are noise, not gaps.
func (d *Differ) contentGaps(primary *DocumentStructure, comp Competitor) []GapRow {
	var rows []GapRow

	for _, key := range comp.Structure.SectionOrder {
		psec, ok := primary.Sections[key]
		if !ok {
			continue
		}
		csec := comp.Structure.Sections[key]

		have := make(map[string]bool)
		for _, t := range d.terms.Extract(sectionText(psec)) {
			have[t] = true
		}

		var missing []string
		for _, t := range d.terms.Extract(sectionText(csec)) {
			if !have[t] {
				missing = append(missing, t)
			}
		}
		if len(missing) < d.cfg.MinTermGap {
			continue
		}

		rows = append(rows, GapRow{
			MissingTitle: csec.Title + " (content depth)",
			Evidence:     "Competitor also discusses: " + joinBounded(missing, d.cfg.MaxEvidenceItems),
			Reason:       d.byCat[CategoryContentDepth].Reason,
			Source:       comp.Label,
			Category:     CategoryContentDepth,
		})
	}

	return rows
}

// sectionText joins a section's attributed text and bullets for term
// extraction.
func sectionText(sec *Section) string {
	if len(sec.Bullets) == 0 {
		return sec.Text
	}
	return sec.Text + " " + strings.Join(sec.Bullets, " ")
}

// dedupeRows suppresses rows sharing a (normalized title, normalized
// source) pair, keeping the first occurrence.
func dedupeRows(rows []GapRow) []GapRow {
	seen := make(map[string]bool, len(rows))
	out := rows[:0]
	for _, r := range rows {
		id := Normalize(r.MissingTitle) + "|" + Normalize(r.Source)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, r)
	}
	return out
}

// joinBounded joins up to max items with a count marker for the remainder.
func joinBounded(items []string, max int) string {
	if max <= 0 || len(items) <= max {
		return strings.Join(items, "; ")
	}
	rest := len(items) - max
	return strings.Join(items[:max], "; ") + fmt.Sprintf("; and %d more", rest)
}

// truncate shortens s to at most n runes on a word boundary.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
