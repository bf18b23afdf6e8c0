package signal

import (
	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
)

// Detector scores a page in one category.
// Implementations must be stateless and safe for concurrent use.
type Detector interface {
	// Category returns the category the detector scores.
	Category() model.Category

	// Detect inspects the page and returns a fresh Signal.
	Detect(in *Input) model.Signal
}

// Input is everything a detector may look at for one page.
type Input struct {
	// Page is the parsed page.
	Page *dom.Document

	// FullText is the page's visible text, whitespace-collapsed.
	FullText string

	// URL is the page URL. Optional.
	URL string

	// Keywords is the locale table for text heuristics.
	Keywords *Keywords
}

// NewInput builds the detector input for a page. A nil kw selects the
// Japanese table.
func NewInput(page *dom.Document, url string, kw *Keywords) *Input {
	if kw == nil {
		kw = Japanese()
	}
	return &Input{
		Page:     page,
		FullText: page.Text(),
		URL:      url,
		Keywords: kw,
	}
}
