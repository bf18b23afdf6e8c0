package model

import (
	"math"
	"sort"
)

// DefaultTopN is how many pages the "fix first" list holds by default.
const DefaultTopN = 10

// RankedPage is one evaluated page in the domain ranking.
type RankedPage struct {
	URL    string   `json:"url"`
	Scores ScoreSet `json:"scores"`
}

// DomainSummary rolls up the results of a batch evaluation. Pages are
// ranked ascending by composite score so the weakest pages come first.
type DomainSummary struct {
	// Evaluated is the number of pages that were scored.
	Evaluated int `json:"evaluated"`

	// Failed is the number of pages that could not be fetched.
	Failed int `json:"failed"`

	// Ranking lists every evaluated page, lowest total first.
	// Ties are broken by URL.
	Ranking []RankedPage `json:"ranking"`

	// FixFirst is the first TopN entries of Ranking.
	FixFirst []RankedPage `json:"fix_first"`

	// Averages maps each category (and "total") to its mean score,
	// rounded to the nearest integer.
	Averages map[string]int `json:"averages"`

	// Ratings counts evaluated pages per rating band of their total.
	Ratings map[Rating]int `json:"ratings"`

	// Report is the optional domain strategy written by the judge.
	Report string `json:"report,omitempty"`
}

// NewDomainSummary ranks the evaluated pages in results. topN <= 0 uses
// DefaultTopN. Unevaluated pages are only counted.
func NewDomainSummary(results []PageResult, topN int) *DomainSummary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	s := &DomainSummary{
		Ranking:  make([]RankedPage, 0, len(results)),
		Averages: make(map[string]int),
		Ratings:  make(map[Rating]int),
	}

	for _, r := range results {
		if !r.Evaluated() {
			s.Failed++
			continue
		}
		s.Evaluated++
		s.Ranking = append(s.Ranking, RankedPage{URL: r.URL, Scores: *r.Scores})
		s.Ratings[Rate(r.Scores.Total)]++
	}

	sort.SliceStable(s.Ranking, func(i, j int) bool {
		a, b := s.Ranking[i], s.Ranking[j]
		if a.Scores.Total != b.Scores.Total {
			return a.Scores.Total < b.Scores.Total
		}
		return a.URL < b.URL
	})

	n := min(topN, len(s.Ranking))
	s.FixFirst = s.Ranking[:n:n]

	if s.Evaluated > 0 {
		sums := make(map[string]int)
		for _, p := range s.Ranking {
			for _, c := range categoryOrder {
				sums[c.String()] += p.Scores.Get(c)
			}
			sums[TotalKey] += p.Scores.Total
		}
		for k, v := range sums {
			s.Averages[k] = int(math.Round(float64(v) / float64(s.Evaluated)))
		}
	}

	return s
}

// TotalKey is the Averages key of the composite score.
const TotalKey = "total"

// Weakest returns the category with the lowest average, or false when
// nothing was evaluated. Ties resolve to the earlier category.
func (s *DomainSummary) Weakest() (Category, bool) {
	if s.Evaluated == 0 {
		return "", false
	}
	best := categoryOrder[0]
	for _, c := range categoryOrder[1:] {
		if s.Averages[c.String()] < s.Averages[best.String()] {
			best = c
		}
	}
	return best, true
}
