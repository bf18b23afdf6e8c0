package signal

import (
	"strings"
	"unicode/utf8"

	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
)

// Crawl/Index points.
const (
	titlePoints       = 25
	descriptionPoints = 25
	canonicalPoints   = 20
	noindexPenalty    = -30
	shortTitlePenalty = -10
	shortDescPenalty  = -10

	minTitleLength       = 10
	minDescriptionLength = 50
)

// CrawlIndexDetector checks the head metadata that search and answer
// engines rely on to fetch, index and canonicalize a page.
type CrawlIndexDetector struct{}

// NewCrawlIndexDetector creates a new crawl/index health detector.
func NewCrawlIndexDetector() *CrawlIndexDetector {
	return &CrawlIndexDetector{}
}

// Category returns model.CategoryCrawlIndex.
func (d *CrawlIndexDetector) Category() model.Category {
	return model.CategoryCrawlIndex
}

// Detect scores title, description, robots directives and canonical link.
func (d *CrawlIndexDetector) Detect(in *Input) model.Signal {
	acc := newAccumulator(0)
	page := in.Page

	titleTag, hasTitleTag := page.First("title")
	title := ""
	if hasTitleTag {
		title = titleTag.Text()
	}
	if title != "" {
		acc.add(titlePoints, "title present")
	} else {
		acc.note("title missing")
	}

	descTag, hasDescTag := page.First("meta", dom.Attr{Key: "name", Value: "description"})
	desc := ""
	if hasDescTag {
		desc = descTag.AttrOr("content", "")
	}
	if strings.TrimSpace(desc) != "" {
		acc.add(descriptionPoints, "meta description present")
	} else {
		acc.note("meta description missing")
	}

	// googlebot is only consulted when there is no robots meta at all.
	robots, ok := page.First("meta", dom.Attr{Key: "name", Value: "robots"})
	if !ok {
		robots, ok = page.First("meta", dom.Attr{Key: "name", Value: "googlebot"})
	}
	if ok && strings.Contains(strings.ToLower(robots.AttrOr("content", "")), "noindex") {
		acc.add(noindexPenalty, "noindex directive found")
		acc.floor()
	}

	canonical, ok := page.First("link", dom.Attr{Key: "rel", Value: "canonical"})
	if ok && canonical.AttrOr("href", "") != "" {
		acc.add(canonicalPoints, "canonical link present")
	} else {
		acc.note("canonical link missing")
	}

	if hasTitleTag {
		if n := utf8.RuneCountInString(title); n < minTitleLength {
			acc.add(shortTitlePenalty, "title may be too short (%d characters)", n)
		}
	}
	if hasDescTag {
		if n := utf8.RuneCountInString(desc); n < minDescriptionLength {
			acc.add(shortDescPenalty, "meta description may be too short (%d characters)", n)
		}
	}

	return acc.signal(d.Category())
}
