package model

import (
	"strings"
	"time"
)

// StatusOK is the status of a page that was fetched and scored.
const StatusOK = "OK"

// fetchFailedPrefix starts the status of a page that could not be fetched.
const fetchFailedPrefix = "fetch failed: "

// PageResult is the outcome of evaluating one URL. A page that could not
// be fetched carries a nil Scores and a status describing the failure;
// the scoring core was never run for it.
type PageResult struct {
	// URL is the evaluated URL as supplied by the caller (trimmed).
	URL string `json:"url"`

	// Status is StatusOK or a "fetch failed: ..." description.
	Status string `json:"status"`

	// Scores holds the blended scores. Nil when the page was not evaluated.
	Scores *ScoreSet `json:"scores,omitempty"`

	// Signals are the rule-based detector outputs in category order.
	Signals []Signal `json:"signals,omitempty"`

	// Digest is the salient-section excerpt sent to the judge.
	Digest string `json:"-"`

	// Locale is the keyword table the detectors used.
	Locale string `json:"locale,omitempty"`

	// Judgment is the external judge's raw per-category scores, if any.
	Judgment Judgment `json:"judgment,omitempty"`

	// JudgeStatus explains why the judgment is missing, when it is.
	JudgeStatus string `json:"judge_status,omitempty"`

	// Report is the optional Markdown advisory written by the judge.
	Report string `json:"report,omitempty"`

	// EvaluatedAt is when the evaluation finished.
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// NewFailedResult builds the result for a page that could not be fetched.
func NewFailedResult(url string, err error) PageResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return PageResult{
		URL:         url,
		Status:      fetchFailedPrefix + msg,
		EvaluatedAt: time.Now(),
	}
}

// Evaluated reports whether the page was scored.
func (r PageResult) Evaluated() bool {
	return r.Scores != nil && r.Status == StatusOK
}

// Failed reports whether the page could not be fetched.
func (r PageResult) Failed() bool {
	return strings.HasPrefix(r.Status, fetchFailedPrefix)
}

// Total returns the composite score, or 0 for unevaluated pages.
func (r PageResult) Total() int {
	if r.Scores == nil {
		return 0
	}
	return r.Scores.Total
}

// Signal returns the detector output for c, if present.
func (r PageResult) Signal(c Category) (Signal, bool) {
	for _, s := range r.Signals {
		if s.Category == c {
			return s, true
		}
	}
	return Signal{}, false
}
