package model

// ScoreSet is the final output of one page evaluation: the five blended
// category scores and the weighted composite, all in [0, 100].
type ScoreSet struct {
	CrawlIndex     int `json:"crawl_index"`
	Answerability  int `json:"answerability"`
	Trust          int `json:"trust"`
	StructuredData int `json:"structured_data"`
	Consistency    int `json:"consistency"`

	// Total is the weighted composite. It is totally ordered so that
	// pages can be ranked against each other.
	Total int `json:"total"`
}

// Get returns the blended score for c. Unknown categories return 0.
func (s ScoreSet) Get(c Category) int {
	switch c {
	case CategoryCrawlIndex:
		return s.CrawlIndex
	case CategoryAnswerability:
		return s.Answerability
	case CategoryTrust:
		return s.Trust
	case CategoryStructuredData:
		return s.StructuredData
	case CategoryConsistency:
		return s.Consistency
	default:
		return 0
	}
}

// With returns a copy of s with category c set to v (clamped).
// The blender builds ScoreSets through this helper.
func (s ScoreSet) With(c Category, v int) ScoreSet {
	v = ClampScore(v)
	switch c {
	case CategoryCrawlIndex:
		s.CrawlIndex = v
	case CategoryAnswerability:
		s.Answerability = v
	case CategoryTrust:
		s.Trust = v
	case CategoryStructuredData:
		s.StructuredData = v
	case CategoryConsistency:
		s.Consistency = v
	}
	return s
}
