package dom

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed page. It is safe for concurrent reads.
type Document struct {
	doc  *goquery.Document
	text string
}

// Attr is an attribute constraint used by Document.First.
// The element matches when its attribute equals Value exactly, or, for
// space-separated attributes such as class and rel, when one of its
// tokens equals Value.
type Attr struct {
	Key   string
	Value string
}

// Parse reads HTML from r and builds a Document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{
		doc:  doc,
		text: visibleText(doc.Nodes...),
	}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Text returns the page's visible text, whitespace-collapsed.
func (d *Document) Text() string {
	return d.text
}

// TextLength returns the length of Text in characters.
func (d *Document) TextLength() int {
	return utf8.RuneCountInString(d.text)
}

// First returns the first element named tag whose attributes satisfy all
// of attrs, in document order.
func (d *Document) First(tag string, attrs ...Attr) (*Element, bool) {
	var found *Element
	d.doc.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !matchesAll(s.Nodes[0], attrs) {
			return true
		}
		found = &Element{node: s.Nodes[0]}
		return false
	})
	return found, found != nil
}

// FindAll returns every element named tag whose attributes satisfy all
// of attrs, in document order.
func (d *Document) FindAll(tag string, attrs ...Attr) []*Element {
	var out []*Element
	for _, n := range d.doc.Find(tag).Nodes {
		if matchesAll(n, attrs) {
			out = append(out, &Element{node: n})
		}
	}
	return out
}

// All returns every element whose name is one of tags, in document order.
func (d *Document) All(tags ...string) []*Element {
	if len(tags) == 0 {
		return nil
	}
	return wrap(d.doc.Find(strings.Join(tags, ",")))
}

// Count returns the number of elements whose name is one of tags.
func (d *Document) Count(tags ...string) int {
	if len(tags) == 0 {
		return 0
	}
	return d.doc.Find(strings.Join(tags, ",")).Length()
}

// WithAttr returns every element that carries the attribute key,
// whatever its value, in document order.
func (d *Document) WithAttr(key string) []*Element {
	return wrap(d.doc.Find("[" + key + "]"))
}

func wrap(s *goquery.Selection) []*Element {
	out := make([]*Element, 0, s.Length())
	for _, n := range s.Nodes {
		out = append(out, &Element{node: n})
	}
	return out
}

// tokenAttrs are the attributes whose values are space-separated lists.
var tokenAttrs = map[string]bool{
	"class":          true,
	"rel":            true,
	"rev":            true,
	"headers":        true,
	"accept-charset": true,
	"accesskey":      true,
	"dropzone":       true,
}

func matchesAll(n *html.Node, attrs []Attr) bool {
	for _, a := range attrs {
		if !attrMatches(n, a) {
			return false
		}
	}
	return true
}

func attrMatches(n *html.Node, want Attr) bool {
	v, ok := getAttr(n, want.Key)
	if !ok {
		return false
	}
	if v == want.Value {
		return true
	}
	if tokenAttrs[want.Key] {
		for _, tok := range strings.Fields(v) {
			if tok == want.Value {
				return true
			}
		}
	}
	return false
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
