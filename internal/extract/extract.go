// Package extract builds the salient-section digest of a page: its
// headings and the paragraph right after each one. The digest keeps
// judge prompts short while preserving the page outline.
package extract

import (
	"strings"

	"github.com/nao1215/aioready/internal/dom"
)

// MaxDigestLength is the maximum digest length in characters.
const MaxDigestLength = 3000

// Digest returns the salient sections of doc.
//
// The first H1 is emitted as "[H1] text", followed by "- text" when the
// element right after it is a paragraph. Every H2 and H3 follows in
// document order in the same form. When the page has none of these
// headings the digest is the page's full text. Either way the result is
// cut to MaxDigestLength characters.
func Digest(doc *dom.Document) string {
	var lines []string

	if h1, ok := doc.First("h1"); ok {
		lines = appendSection(lines, h1)
	}
	for _, h := range doc.All("h2", "h3") {
		lines = appendSection(lines, h)
	}

	if len(lines) == 0 {
		return Truncate(doc.Text(), MaxDigestLength)
	}
	return Truncate(strings.Join(lines, "\n"), MaxDigestLength)
}

func appendSection(lines []string, heading *dom.Element) []string {
	lines = append(lines, "["+strings.ToUpper(heading.Name())+"] "+heading.Text())
	if next, ok := heading.Next(); ok && next.Name() == "p" {
		lines = append(lines, "- "+next.Text())
	}
	return lines
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
