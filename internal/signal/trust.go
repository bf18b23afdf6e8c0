package signal

import (
	"regexp"

	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
)

var (
	contactHrefPattern  = regexp.MustCompile(`contact|mailto|tel`)
	externalHrefPattern = regexp.MustCompile(`^https?://`)
)

// Trust points.
const (
	authorPoints       = 20
	operatorPoints     = 15
	contactPoints      = 20
	companyPoints      = 15
	updateDatePoints   = 15
	manyExternalPoints = 15
	fewExternalPoints  = 10

	manyExternalLinks = 5
)

// TrustDetector looks for E-E-A-T proxies: who wrote and runs the page,
// how to reach them, when it was updated and what it cites.
type TrustDetector struct{}

// NewTrustDetector creates a new trust detector.
func NewTrustDetector() *TrustDetector {
	return &TrustDetector{}
}

// Category returns model.CategoryTrust.
func (d *TrustDetector) Category() model.Category {
	return model.CategoryTrust
}

// Detect scores author, operator, contact, company, date and reference signals.
func (d *TrustDetector) Detect(in *Input) model.Signal {
	acc := newAccumulator(0)
	page, text, kw := in.Page, in.FullText, in.Keywords

	if hasAuthorMeta(page) || containsAny(text, kw.set.Author) {
		acc.add(authorPoints, "author information present")
	}

	if containsAny(text, kw.set.Operator) {
		acc.add(operatorPoints, "operator information present")
	}

	if countHref(page, contactHrefPattern) > 0 || containsAny(text, kw.set.Contact) {
		acc.add(contactPoints, "contact information present")
	}

	if containsAny(text, kw.set.Company) {
		acc.add(companyPoints, "company information present")
	}

	if hasDateMeta(page) || matchesAny(text, kw.updateDates) {
		acc.add(updateDatePoints, "update date present")
	}

	switch n := countHref(page, externalHrefPattern); {
	case n >= manyExternalLinks:
		acc.add(manyExternalPoints, "%d external links", n)
	case n > 0:
		acc.add(fewExternalPoints, "%d external links (few)", n)
	}

	return acc.signal(d.Category())
}

// hasAuthorMeta checks meta name=author, falling back to
// property=article:author only when there is no author meta.
func hasAuthorMeta(page *dom.Document) bool {
	m, ok := page.First("meta", dom.Attr{Key: "name", Value: "author"})
	if !ok {
		m, ok = page.First("meta", dom.Attr{Key: "property", Value: "article:author"})
	}
	return ok && m.AttrOr("content", "") != ""
}

func hasDateMeta(page *dom.Document) bool {
	if _, ok := page.First("meta", dom.Attr{Key: "property", Value: "article:modified_time"}); ok {
		return true
	}
	_, ok := page.First("meta", dom.Attr{Key: "property", Value: "article:published_time"})
	return ok
}

// countHref counts anchors whose href matches re.
func countHref(page *dom.Document, re *regexp.Regexp) int {
	n := 0
	for _, a := range page.All("a") {
		if href, ok := a.Attr("href"); ok && re.MatchString(href) {
			n++
		}
	}
	return n
}
