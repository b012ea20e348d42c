// Package goquery provides goquery-based markup processing: the document
// structurer and the FAQ extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gapscan"
)

// Ensure Structurer implements gapscan.Structurer at compile time.
var _ gapscan.Structurer = (*Structurer)(nil)

// chromeSelectors identify layout chrome stripped from the content region
// before heading collection: navigation, footers, forms, consent banners,
// share widgets, and similar boilerplate containers.
var chromeSelectors = []string{
	"nav", "footer", "header", "form", "aside",
	"[role=navigation]", "[role=banner]", "[role=contentinfo]",
	"[class*=cookie]", "[id*=cookie]", "[class*=consent]",
	"[class*=share]", "[class*=subscribe]", "[class*=newsletter]",
	"[class*=breadcrumb]", "[class*=sidebar]", "[class*=comment]",
	"[class*=popup]", "[class*=modal]", "[class*=promo]",
}

// contentSelectors locate the primary content container, tried in order
// before falling back to the whole body.
var contentSelectors = []string{"main", "[role=main]", "article"}

// Structurer reconstructs a hierarchical outline from raw HTML.
type Structurer struct {
	cfg gapscan.Config
}

// NewStructurer creates a Structurer with the given config.
func NewStructurer(cfg gapscan.Config) *Structurer {
	return &Structurer{cfg: cfg}
}

// Structure parses markup into a DocumentStructure. Malformed or empty
// markup degrades to an empty structure rather than an error.
func (s *Structurer) Structure(markup, source string) (*gapscan.DocumentStructure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return gapscan.NewDocumentStructure(source), nil
	}

	// JSON-LD must be read before scripts are removed.
	ldQuestions := questionsFromJSONLD(doc)
	schemaTypes := schemaTypesFromJSONLD(doc)
	domQuestions := questionsFromDOM(doc, s.cfg)

	doc.Find("script, style, noscript, template").Remove()

	meta := collectMeta(doc)
	meta.SchemaTypes = schemaTypes

	root := contentRoot(doc)
	stripChrome(root)

	ds := gapscan.BuildStructure(collectBlocks(root), source, s.cfg)
	ds.Meta = meta

	// Question sources in priority order: structured metadata, then DOM
	// heuristics, then retained section headings that are themselves
	// questions. AddQuestion dedupes by normalized text and enforces the
	// document cap.
	for _, q := range ldQuestions {
		ds.AddQuestion(q, s.cfg.MaxFAQQuestions)
	}
	for _, q := range domQuestions {
		ds.AddQuestion(q, s.cfg.MaxFAQQuestions)
	}
	for _, key := range ds.SectionOrder {
		if sec := ds.Sections[key]; strings.HasSuffix(sec.Key, "?") {
			ds.AddQuestion(sec.Title, s.cfg.MaxFAQQuestions)
		}
	}

	return ds, nil
}

// contentRoot prefers a semantically-marked main content region and falls
// back to the whole body.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return doc.Find("body").First()
}

// stripChrome removes layout chrome in place. This materially changes
// what counts as content and must happen before heading collection.
func stripChrome(root *goquery.Selection) {
	root.Find(strings.Join(chromeSelectors, ", ")).Remove()
}

// collectBlocks linearizes the content region into document-order blocks:
// headings at levels 2-4 plus paragraph and list-item text.
func collectBlocks(root *goquery.Selection) []gapscan.Block {
	var blocks []gapscan.Block

	root.Find("h2, h3, h4, p, li, blockquote").Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		switch tag := sel.Nodes[0].Data; tag {
		case "h2", "h3", "h4":
			blocks = append(blocks, gapscan.Block{
				Kind:  gapscan.BlockHeading,
				Level: int(tag[1] - '0'),
				Text:  cleanText(sel.Text()),
			})
		case "li":
			// Nested lists surface as their own li blocks; drop them from
			// this item's text to avoid double attribution.
			item := sel.Clone()
			item.Find("ul, ol").Remove()
			if text := cleanText(item.Text()); text != "" {
				blocks = append(blocks, gapscan.Block{Kind: gapscan.BlockListItem, Text: text})
			}
		default:
			// Paragraph text inside a list item is already covered by the
			// item block.
			if sel.Closest("li").Length() > 0 {
				return
			}
			if text := cleanText(sel.Text()); text != "" {
				blocks = append(blocks, gapscan.Block{Kind: gapscan.BlockParagraph, Text: text})
			}
		}
	})

	return blocks
}

// videoHosts mark an iframe as embedded video.
var videoHosts = []string{"youtube.com", "youtube-nocookie.com", "youtu.be", "vimeo.com", "dailymotion.com"}

// mapHosts mark an iframe as an embedded map.
var mapHosts = []string{"google.com/maps", "maps.google", "openstreetmap.org"}

// collectMeta gathers the scalar page summaries used by the audit and
// compliance modules. Call after script/style removal so the word count
// reflects visible text only.
func collectMeta(doc *goquery.Document) gapscan.PageMeta {
	meta := gapscan.PageMeta{
		Title:           cleanText(doc.Find("title").First().Text()),
		MetaDescription: metaName(doc, "description"),
		Robots:          metaName(doc, "robots"),
		Viewport:        metaName(doc, "viewport"),
		OGTitle:         metaProp(doc, "og:title"),
		OGDescription:   metaProp(doc, "og:description"),
		OGImage:         metaProp(doc, "og:image"),
		H1Count:         doc.Find("h1").Length(),
		H2Count:         doc.Find("h2").Length(),
		H3Count:         doc.Find("h3").Length(),
		H4Count:         doc.Find("h4").Length(),
		TableCount:      doc.Find("table").Length(),
		WordCount:       len(strings.Fields(doc.Find("body").Text())),
	}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		meta.ImageCount++
		if strings.TrimSpace(sel.AttrOr("alt", "")) == "" {
			meta.ImagesNoAlt++
		}
	})

	meta.VideoCount = doc.Find("video").Length()
	doc.Find("iframe").Each(func(_ int, sel *goquery.Selection) {
		src := strings.ToLower(sel.AttrOr("src", ""))
		if containsAny(src, videoHosts) {
			meta.VideoCount++
		}
		if containsAny(src, mapHosts) {
			meta.HasMap = true
		}
	})

	return meta
}

func metaName(doc *goquery.Document, name string) string {
	return strings.TrimSpace(doc.Find(`meta[name="` + name + `"]`).First().AttrOr("content", ""))
}

func metaProp(doc *goquery.Document, prop string) string {
	return strings.TrimSpace(doc.Find(`meta[property="` + prop + `"]`).First().AttrOr("content", ""))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cleanText collapses whitespace runs in rendered node text.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
