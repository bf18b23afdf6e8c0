package signal

import (
	"unicode/utf8"

	"github.com/nao1215/aioready/internal/model"
)

// ConsistencyPrior is the neutral starting score for content consistency.
const ConsistencyPrior = 50

// Consistency adjustments.
const (
	thinContentPenalty   = -30
	slimContentPenalty   = -20
	richContentPoints    = 20
	outlinePoints        = 20
	brokenOutlinePenalty = -15
	variedContentPoints  = 10
	fewParagraphsPenalty = -10

	thinText         = 500
	slimText         = 1000
	richText         = 5000
	variedParagraphs = 5
	minParagraphs    = 3
)

// ConsistencyDetector estimates content depth and structural coherence.
type ConsistencyDetector struct{}

// NewConsistencyDetector creates a new content consistency detector.
func NewConsistencyDetector() *ConsistencyDetector {
	return &ConsistencyDetector{}
}

// Category returns model.CategoryConsistency.
func (d *ConsistencyDetector) Category() model.Category {
	return model.CategoryConsistency
}

// Detect adjusts the prior for text volume, heading outline and the mix
// of content elements.
func (d *ConsistencyDetector) Detect(in *Input) model.Signal {
	acc := newAccumulator(ConsistencyPrior)
	page := in.Page

	switch n := utf8.RuneCountInString(in.FullText); {
	case n < thinText:
		acc.add(thinContentPenalty, "thin content (under %d characters)", thinText)
	case n < slimText:
		acc.add(slimContentPenalty, "somewhat thin content (under %d characters)", slimText)
	case n > richText:
		acc.add(richContentPoints, "rich content (over %d characters)", richText)
	}

	h1, h2 := page.Count("h1"), page.Count("h2")
	switch {
	case h1 == 1 && h2 >= 2:
		acc.add(outlinePoints, "heading outline is well formed")
	case h1 == 0 || h2 == 0:
		acc.add(brokenOutlinePenalty, "heading outline is incomplete")
	}

	paragraphs := page.Count("p")
	switch {
	case paragraphs >= variedParagraphs && (page.Count("img") > 0 || page.Count("ul", "ol") > 0):
		acc.add(variedContentPoints, "varied content elements")
	case paragraphs < minParagraphs:
		acc.add(fewParagraphsPenalty, "few paragraphs (%d)", paragraphs)
	}

	return acc.signal(d.Category())
}
