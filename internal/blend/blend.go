// Package blend merges rule-based signals with an optional external
// judgment and computes the weighted composite score.
package blend

import (
	"math"

	"github.com/nao1215/aioready/internal/model"
)

// Blend weights. A judged category is round(0.7*rule + 0.3*judged).
const (
	RuleWeight  = 0.7
	JudgeWeight = 0.3
)

// Blend builds the ScoreSet for one page. signals should hold one
// Signal per category; a missing category scores 0. Categories absent
// from judgment, or a nil judgment, keep the rule score unchanged.
func Blend(signals []model.Signal, judgment model.Judgment) model.ScoreSet {
	rule := make(map[model.Category]int, len(signals))
	for _, s := range signals {
		rule[s.Category] = s.Score
	}

	var set model.ScoreSet
	for _, c := range model.Categories() {
		set = set.With(c, Category(rule[c], judgment, c))
	}
	set.Total = Composite(set)
	return set
}

// Category blends a single rule score with the judgment for c.
func Category(rule int, judgment model.Judgment, c model.Category) int {
	judged, ok := judgment.Lookup(c, rule)
	if !ok {
		return model.ClampScore(rule)
	}
	return model.ClampScore(round(float64(float64(rule)*RuleWeight) + float64(float64(judged)*JudgeWeight)))
}

// Composite returns the weighted sum of the five category scores,
// rounded half to even. Terms are summed in category order.
func Composite(s model.ScoreSet) int {
	var sum float64
	for _, c := range model.Categories() {
		// The conversion rounds each product and keeps the compiler from
		// fusing multiply-adds.
		sum += float64(c.Weight() * float64(s.Get(c)))
	}
	return model.ClampScore(round(sum))
}

func round(v float64) int {
	return int(math.RoundToEven(v))
}
