package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// hiddenElements never contribute to visible text.
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// visibleText walks the given subtrees and joins their text nodes with
// single spaces, collapsing all runs of whitespace.
func visibleText(roots ...*html.Node) string {
	var fields []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if hiddenElements[n.Data] {
				return
			}
		case html.TextNode:
			fields = append(fields, strings.Fields(n.Data)...)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, r := range roots {
		walk(r)
	}
	return strings.Join(fields, " ")
}
