package pipeline

import (
	"time"

	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
	"github.com/nao1215/aioready/internal/signal"
)

// Evaluation is the working state of one page as it moves through the
// pipeline. Steps fill it in order; Result converts it to the public
// PageResult.
type Evaluation struct {
	// URL is the page being evaluated.
	URL string

	// Document is the parsed page. Set by the fetch step, or up front
	// when the caller already has the markup.
	Document *dom.Document

	// Digest is the salient-section excerpt.
	Digest string

	// Locale and Keywords select the text heuristics.
	Locale   string
	Keywords *signal.Keywords

	// Judgment is the external judge's scores. Nil when unavailable.
	Judgment model.Judgment

	// JudgeStatus explains a missing judgment.
	JudgeStatus string

	// Signals are the detector outputs.
	Signals []model.Signal

	// Scores is set by the blend step.
	Scores *model.ScoreSet

	// Report is the optional advisory Markdown.
	Report string

	// Err is the critical error that stopped the pipeline, if any.
	Err error

	// PerformedSteps lists completed steps in order.
	PerformedSteps []string
}

// NewEvaluation starts an evaluation for url.
func NewEvaluation(url string) *Evaluation {
	return &Evaluation{URL: url}
}

// NewDocumentEvaluation starts an evaluation for markup that is
// already parsed. The fetch step leaves it untouched.
func NewDocumentEvaluation(url string, doc *dom.Document) *Evaluation {
	return &Evaluation{URL: url, Document: doc}
}

// Result converts the evaluation into a PageResult. An evaluation that
// never reached the blend step is reported as a failed fetch.
func (e *Evaluation) Result() model.PageResult {
	if e.Scores == nil {
		err := e.Err
		if err == nil {
			err = errNotScored
		}
		return model.NewFailedResult(e.URL, err)
	}
	return model.PageResult{
		URL:         e.URL,
		Status:      model.StatusOK,
		Scores:      e.Scores,
		Signals:     e.Signals,
		Digest:      e.Digest,
		Locale:      e.Locale,
		Judgment:    e.Judgment,
		JudgeStatus: e.JudgeStatus,
		Report:      e.Report,
		EvaluatedAt: time.Now(),
	}
}
