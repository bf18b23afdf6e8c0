package dom

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Element is one element of a Document.
type Element struct {
	node *html.Node
}

// Name returns the lowercase tag name.
func (e *Element) Name() string {
	return e.node.Data
}

// Attr returns the value of the attribute key and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	return getAttr(e.node, key)
}

// AttrOr returns the value of the attribute key, or def when absent.
func (e *Element) AttrOr(key, def string) string {
	if v, ok := getAttr(e.node, key); ok {
		return v
	}
	return def
}

// Text returns the element's visible text, whitespace-collapsed.
func (e *Element) Text() string {
	return visibleText(e.node)
}

// RawText returns the concatenated text children of the element without
// any filtering. It is meant for script bodies such as JSON-LD.
func (e *Element) RawText() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Next returns the element that immediately follows e among its siblings.
// Comments and whitespace-only text are skipped; any other text in
// between means there is no adjacent element.
func (e *Element) Next() (*Element, bool) {
	for n := e.node.NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.ElementNode:
			return &Element{node: n}, true
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, false
			}
		}
	}
	return nil, false
}

// ClassMatches reports whether re matches the element's class attribute
// as a whole or any single class in it.
func (e *Element) ClassMatches(re *regexp.Regexp) bool {
	v, ok := getAttr(e.node, "class")
	if !ok {
		return false
	}
	if re.MatchString(v) {
		return true
	}
	for _, tok := range strings.Fields(v) {
		if re.MatchString(tok) {
			return true
		}
	}
	return false
}
