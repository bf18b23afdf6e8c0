package model

// MinScore and MaxScore bound every score in the system.
const (
	MinScore = 0
	MaxScore = 100
)

// ClampScore bounds v to [MinScore, MaxScore].
func ClampScore(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// Signal is one category's rule-based score together with the evidence
// that produced it. Evidence is kept in the order the checks ran so
// that reports are reproducible.
//
// A Signal is built once by a detector and never modified afterwards.
type Signal struct {
	// Category is the category this signal scores.
	Category Category `json:"category"`

	// Score is the clamped rule score in [0, 100].
	Score int `json:"score"`

	// Evidence lists one short human-readable line per check performed.
	Evidence []string `json:"evidence"`
}

// NewSignal builds a Signal, clamping score and copying evidence so that
// the caller's slice can be reused.
func NewSignal(category Category, score int, evidence []string) Signal {
	ev := make([]string, len(evidence))
	copy(ev, evidence)
	return Signal{
		Category: category,
		Score:    ClampScore(score),
		Evidence: ev,
	}
}
