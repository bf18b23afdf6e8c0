package signal

import (
	"encoding/json"
	"strings"

	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
)

// SchemaWeight awards Points to JSON-LD types containing Type.
type SchemaWeight struct {
	Type   string `yaml:"type"`
	Points int    `yaml:"points"`
}

// DefaultSchemaTable is the priority table for schema.org types. A
// detected type is scored by the first entry whose Type is a substring
// of it, so "FAQPage" is listed before anything it might also contain.
func DefaultSchemaTable() []SchemaWeight {
	return []SchemaWeight{
		{Type: "FAQPage", Points: 30},
		{Type: "HowTo", Points: 30},
		{Type: "Product", Points: 25},
		{Type: "Article", Points: 25},
		{Type: "BlogPosting", Points: 25},
		{Type: "BreadcrumbList", Points: 20},
		{Type: "Organization", Points: 20},
		{Type: "WebPage", Points: 15},
		{Type: "WebSite", Points: 15},
	}
}

const microdataPoints = 10

// StructuredDataDetector scores schema.org markup in JSON-LD and microdata.
type StructuredDataDetector struct {
	table []SchemaWeight
}

// StructuredDataOption configures a StructuredDataDetector.
type StructuredDataOption func(*StructuredDataDetector)

// WithSchemaTable replaces the schema priority table.
func WithSchemaTable(table []SchemaWeight) StructuredDataOption {
	return func(d *StructuredDataDetector) {
		d.table = append([]SchemaWeight(nil), table...)
	}
}

// NewStructuredDataDetector creates a new structured data detector.
func NewStructuredDataDetector(opts ...StructuredDataOption) *StructuredDataDetector {
	d := &StructuredDataDetector{table: DefaultSchemaTable()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Category returns model.CategoryStructuredData.
func (d *StructuredDataDetector) Category() model.Category {
	return model.CategoryStructuredData
}

// Detect scores every distinct JSON-LD @type once, plus a flat bonus for
// microdata. Malformed JSON-LD blocks are skipped.
func (d *StructuredDataDetector) Detect(in *Input) model.Signal {
	acc := newAccumulator(0)

	for _, t := range SchemaTypes(in.Page) {
		for _, w := range d.table {
			if strings.Contains(t, w.Type) {
				acc.add(w.Points, "schema: %s", t)
				break
			}
		}
	}

	if n := len(in.Page.WithAttr("itemtype")); n > 0 {
		acc.add(microdataPoints, "%d microdata items", n)
	}

	return acc.signal(d.Category())
}

// SchemaTypes returns the distinct JSON-LD @type values of a page in the
// order they first appear.
func SchemaTypes(page *dom.Document) []string {
	var types []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	for _, script := range page.FindAll("script", dom.Attr{Key: "type", Value: "application/ld+json"}) {
		var data any
		if err := json.Unmarshal([]byte(script.RawText()), &data); err != nil {
			continue
		}
		switch v := data.(type) {
		case map[string]any:
			for _, t := range typesOf(v) {
				add(t)
			}
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					for _, t := range typesOf(obj) {
						add(t)
					}
				}
			}
		}
	}
	return types
}

// typesOf reads @type as a string or an array of strings.
func typesOf(obj map[string]any) []string {
	switch t := obj["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
