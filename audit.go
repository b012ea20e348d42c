package gapscan

import (
	"regexp"
	"strings"
)

// Audit summarizes basic on-page health checks for one document: SEO
// fundamentals, structured-data presence, and answer-readiness heuristics.
// These are simple threshold checks, independent of the gap differ.
type Audit struct {
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Score           int      `json:"score"`
}

var freshnessRe = regexp.MustCompile(`\b(20\d\d|updated)\b`)

// AuditPage runs the on-page checks against a structured document.
func AuditPage(ds *DocumentStructure) Audit {
	var a Audit
	m := ds.Meta

	if m.Title == "" {
		a.issue("Missing title tag", "Add a title that names the main topic.")
	} else if len([]rune(m.Title)) > 60 {
		a.issue("Title too long", "Shorten the title to under 60 characters.")
	}

	if m.MetaDescription == "" {
		a.issue("Missing meta description", "Add a 140-160 character meta description.")
	} else if len([]rune(m.MetaDescription)) > 160 {
		a.issue("Meta description too long", "Shorten the meta description to under 160 characters.")
	}

	switch {
	case m.H1Count == 0:
		a.issue("Missing H1", "Add a single H1 heading.")
	case m.H1Count > 1:
		a.issue("Multiple H1s", "Use only one H1.")
	}

	if m.WordCount < 800 {
		a.issue("Thin content", "Increase content depth to at least 800 words.")
	}
	if m.H2Count < 3 {
		a.issue("Weak content structure", "Add more H2 sections for the topic's key angles.")
	}

	auditSchema(&a, m.SchemaTypes)
	auditReadiness(&a, ds)

	a.Score = 100 - 12*len(a.Issues)
	if a.Score < 0 {
		a.Score = 0
	}

	return a
}

func (a *Audit) issue(issue, recommendation string) {
	a.Issues = append(a.Issues, issue)
	a.Recommendations = append(a.Recommendations, recommendation)
}

func auditSchema(a *Audit, types []string) {
	has := func(names ...string) bool {
		for _, t := range types {
			for _, n := range names {
				if t == n {
					return true
				}
			}
		}
		return false
	}

	if len(types) == 0 {
		a.issue("No structured data detected", "Add JSON-LD markup to improve eligibility for rich results.")
	}
	if !has("Article", "BlogPosting") {
		a.Recommendations = append(a.Recommendations, "Add Article or BlogPosting markup.")
	}
	if !has("FAQPage") {
		a.Recommendations = append(a.Recommendations, "Add FAQPage markup for the Q&A block.")
	}
	if !has("BreadcrumbList") {
		a.Recommendations = append(a.Recommendations, "Add BreadcrumbList markup for better result display.")
	}
}

// auditReadiness applies heuristics for answer-engine friendliness:
// question headings, scannable lists, depth, and freshness signals.
func auditReadiness(a *Audit, ds *DocumentStructure) {
	hasQuestionHeading := len(ds.Questions) > 0
	hasBullets := false
	for _, key := range ds.SectionOrder {
		sec := ds.Sections[key]
		if len(sec.Bullets) > 0 {
			hasBullets = true
		}
		if strings.HasSuffix(sec.Key, "?") {
			hasQuestionHeading = true
		}
	}

	if hasQuestionHeading {
		a.Strengths = append(a.Strengths, "Uses question-style headings")
	} else {
		a.issue("No question-style headings", "Add FAQ or question-based headings.")
	}

	if hasBullets {
		a.Strengths = append(a.Strengths, "Uses lists or bullet points")
	} else {
		a.issue("No lists detected", "Add bullet points or numbered lists for scannability.")
	}

	if ds.Meta.WordCount >= 1000 {
		a.Strengths = append(a.Strengths, "Strong content depth")
	}

	if freshnessRe.MatchString(strings.ToLower(ds.AllText())) {
		a.Strengths = append(a.Strengths, "Shows a freshness or update signal")
	} else {
		a.issue("No freshness signal", "Add a visible last-updated date.")
	}
}
