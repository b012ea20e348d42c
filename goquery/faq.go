package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gapscan"
)

// questionsFromJSONLD extracts named questions from FAQPage structured
// data. Invalid or irrelevant JSON-LD blocks are skipped silently.
func questionsFromJSONLD(doc *goquery.Document) []string {
	var questions []string

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return
		}
		questions = append(questions, faqNames(data)...)
	})

	return questions
}

// faqNames walks decoded JSON-LD looking for FAQPage entities and returns
// their question names.
func faqNames(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, faqNames(item)...)
		}
		return out
	case map[string]any:
		if graph, ok := t["@graph"]; ok {
			if out := faqNames(graph); len(out) > 0 {
				return out
			}
		}
		if hasType(t, "FAQPage") {
			return questionNames(t["mainEntity"])
		}
	}
	return nil
}

func questionNames(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, questionNames(item)...)
		}
		return out
	case map[string]any:
		if !hasType(t, "Question") {
			return nil
		}
		if name, ok := t["name"].(string); ok {
			if name = strings.TrimSpace(name); name != "" {
				return []string{name}
			}
		}
	}
	return nil
}

func hasType(m map[string]any, want string) bool {
	switch t := m["@type"].(type) {
	case string:
		return t == want
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// schemaTypesFromJSONLD collects the distinct top-level @type values of
// every JSON-LD block on the page, in discovery order.
func schemaTypesFromJSONLD(doc *goquery.Document) []string {
	var types []string
	seen := make(map[string]bool)

	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case []any:
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			if graph, ok := t["@graph"]; ok {
				walk(graph)
			}
			switch typ := t["@type"].(type) {
			case string:
				add(typ)
			case []any:
				for _, v := range typ {
					if s, ok := v.(string); ok {
						add(s)
					}
				}
			}
		}
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return
		}
		walk(data)
	})

	return types
}

// questionsFromDOM scans containers whose class or id signals an FAQ block
// for question-shaped text of plausible length in their heading-like or
// interactive children.
func questionsFromDOM(doc *goquery.Document, cfg gapscan.Config) []string {
	var out []string

	doc.Find("section, div, details").Each(func(_ int, sel *goquery.Selection) {
		marker := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
		if !strings.Contains(marker, "faq") && !strings.Contains(marker, "accordion") {
			return
		}
		sel.Find("summary, h3, h4, h5, dt, button, strong").Each(func(_ int, q *goquery.Selection) {
			if text := cleanText(q.Text()); cfg.PlausibleQuestion(text) {
				out = append(out, text)
			}
		})
	})

	return out
}
