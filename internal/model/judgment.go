package model

// Judgment is an optional, possibly partial, per-category score supplied
// by the external judge. A nil or empty Judgment means "no judgment
// available" and is a normal operating mode.
type Judgment map[Category]int

// NewJudgment builds a Judgment from raw scores, dropping unknown
// categories and clamping values to [0, 100].
func NewJudgment(scores map[Category]int) Judgment {
	j := make(Judgment, len(scores))
	for c, v := range scores {
		if !c.Valid() {
			continue
		}
		j[c] = ClampScore(v)
	}
	return j
}

// Lookup returns the judged score for c, or fallback when the judgment is
// absent or lacks c. It is safe to call on a nil Judgment.
func (j Judgment) Lookup(c Category, fallback int) (int, bool) {
	if j == nil {
		return fallback, false
	}
	v, ok := j[c]
	if !ok {
		return fallback, false
	}
	return v, true
}

// Empty reports whether the judgment holds no scores.
func (j Judgment) Empty() bool {
	return len(j) == 0
}
