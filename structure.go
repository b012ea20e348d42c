package gapscan

import "strings"

// BlockKind identifies the role of a content block in document order.
type BlockKind int

// Block kinds produced by markup walkers.
const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockListItem
)

// Block is one unit of a document's linearized content: a heading at
// levels 2-4 or a text-bearing block attributed to the headings above it.
// Markup-specific walkers (see goquery/) produce blocks; BuildStructure
// consumes them without touching the DOM.
type Block struct {
	Kind  BlockKind
	Level int // heading depth, 2-4; zero for non-headings
	Text  string
}

// Section is a single heading-anchored unit of content. Sections are
// immutable after structuring and owned by one DocumentStructure.
type Section struct {
	Level     int      `json:"level"`
	Title     string   `json:"title"`
	Key       string   `json:"key"`
	ParentKey string   `json:"parentKey,omitempty"`
	Text      string   `json:"text,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// PageMeta holds scalar page summaries used by the audit and compliance
// modules, not by the gap differ itself.
type PageMeta struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Robots          string   `json:"robots"`
	Viewport        string   `json:"viewport"`
	OGTitle         string   `json:"ogTitle"`
	OGDescription   string   `json:"ogDescription"`
	OGImage         string   `json:"ogImage"`
	WordCount       int      `json:"wordCount"`
	H1Count         int      `json:"h1Count"`
	H2Count         int      `json:"h2Count"`
	H3Count         int      `json:"h3Count"`
	H4Count         int      `json:"h4Count"`
	SchemaTypes     []string `json:"schemaTypes,omitempty"`
	ImageCount      int      `json:"imageCount"`
	ImagesNoAlt     int      `json:"imagesNoAlt"`
	VideoCount      int      `json:"videoCount"`
	TableCount      int      `json:"tableCount"`
	HasMap          bool     `json:"hasMap"`
}

// DocumentStructure is the structurer's output for one page: the section
// map keyed by canonical heading, discovery order, the FAQ question set,
// and scalar summaries. Primary and competitor documents share this shape,
// enabling symmetric processing.
type DocumentStructure struct {
	Source       string              `json:"source"`
	Sections     map[string]*Section `json:"sections"`
	SectionOrder []string            `json:"sectionOrder"`

	// Questions preserves first-seen casing in discovery order;
	// QuestionKeys is the normalized membership set.
	Questions    []string        `json:"questions,omitempty"`
	QuestionKeys map[string]bool `json:"-"`

	Meta PageMeta `json:"meta"`
}

// NewDocumentStructure returns an empty structure for the given source.
func NewDocumentStructure(source string) *DocumentStructure {
	return &DocumentStructure{
		Source:       source,
		Sections:     make(map[string]*Section),
		QuestionKeys: make(map[string]bool),
	}
}

// HasSection reports whether a canonical key exists in the section map.
func (d *DocumentStructure) HasSection(key string) bool {
	_, ok := d.Sections[key]
	return ok
}

// HasQuestion reports whether the document answers a question, matched by
// normalized text.
func (d *DocumentStructure) HasQuestion(q string) bool {
	return d.QuestionKeys[Normalize(q)]
}

// AddQuestion records a question if it is new, non-empty, and the cap has
// not been reached. It reports whether the question was added.
func (d *DocumentStructure) AddQuestion(q string, maxQuestions int) bool {
	q = strings.TrimSpace(q)
	key := Normalize(q)
	if key == "" || d.QuestionKeys[key] {
		return false
	}
	if maxQuestions > 0 && len(d.Questions) >= maxQuestions {
		return false
	}
	if d.QuestionKeys == nil {
		d.QuestionKeys = make(map[string]bool)
	}
	d.QuestionKeys[key] = true
	d.Questions = append(d.Questions, q)
	return true
}

// Children returns the sections whose parent is key, in document order.
func (d *DocumentStructure) Children(key string) []*Section {
	var out []*Section
	for _, k := range d.SectionOrder {
		if sec := d.Sections[k]; sec.ParentKey == key {
			out = append(out, sec)
		}
	}
	return out
}

// AllText concatenates section texts in document order.
func (d *DocumentStructure) AllText() string {
	var sb strings.Builder
	for _, k := range d.SectionOrder {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.Sections[k].Text)
	}
	return sb.String()
}

// openSection tracks a section currently collecting trailing content.
// The level is the occurrence's heading depth, which may differ from the
// section's recorded level when a duplicate heading reappears deeper.
type openSection struct {
	sec   *Section
	level int
}

// BuildStructure reconstructs a hierarchical outline from an ordered block
// list. It is a pure function: identical input yields an identical
// structure, with no shared state across calls.
//
// Headings that normalize to empty or match the noise filter are skipped
// entirely; they neither become sections nor act as parents, but they
// still terminate content collection at their level. Trailing paragraphs
// and list items are attributed to every heading still collecting (a
// level-3 section's text also belongs to its level-2 ancestor), bounded
// per section by the config caps. Duplicate keys merge by appending text,
// never by overwriting or double-registering.
func BuildStructure(blocks []Block, source string, cfg Config) *DocumentStructure {
	ds := NewDocumentStructure(source)
	noise := NewNoiseFilter(cfg)

	// chunks counts blocks attributed per key to enforce MaxSectionChunks.
	chunks := make(map[string]int)
	var open []openSection

	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			level := b.Level
			if level < 2 || level > 4 {
				continue
			}

			// Close every section at or below this depth, noise or not:
			// an irregular or noisy heading still ends the sections above
			// it, it just never becomes a parent itself.
			for len(open) > 0 && open[len(open)-1].level >= level {
				open = open[:len(open)-1]
			}

			title := strings.Join(strings.Fields(b.Text), " ")
			key := cfg.CanonicalKey(title)
			if key == "" || noise.IsNoise(title) {
				continue
			}

			if existing, ok := ds.Sections[key]; ok {
				// Later occurrence of a known heading: merge, reusing the
				// existing section for attribution at the new depth.
				open = append(open, openSection{sec: existing, level: level})
				continue
			}

			parent := ""
			if len(open) > 0 {
				parent = open[len(open)-1].sec.Key
			}

			sec := &Section{
				Level:     level,
				Title:     title,
				Key:       key,
				ParentKey: parent,
			}
			ds.Sections[key] = sec
			ds.SectionOrder = append(ds.SectionOrder, key)
			open = append(open, openSection{sec: sec, level: level})

		case BlockParagraph, BlockListItem:
			text := strings.Join(strings.Fields(b.Text), " ")
			if text == "" {
				continue
			}
			for i, o := range open {
				appendSectionText(o.sec, text, chunks, cfg)
				// Bullets belong to the section the item sits directly
				// under, not to its ancestors.
				if b.Kind == BlockListItem && i == len(open)-1 {
					appendBullet(o.sec, text, cfg)
				}
			}
		}
	}

	return ds
}

func appendSectionText(sec *Section, text string, chunks map[string]int, cfg Config) {
	if chunks[sec.Key] >= cfg.MaxSectionChunks || len(sec.Text) >= cfg.MaxSectionText {
		return
	}
	if sec.Text != "" {
		sec.Text += " "
	}
	sec.Text += text
	chunks[sec.Key]++
}

func appendBullet(sec *Section, text string, cfg Config) {
	if len([]rune(text)) > cfg.MaxBulletLength || len(sec.Bullets) >= cfg.MaxBullets {
		return
	}
	sec.Bullets = append(sec.Bullets, text)
}
