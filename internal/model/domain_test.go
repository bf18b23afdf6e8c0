package model

import (
	"errors"
	"fmt"
	"testing"
)

func evaluated(url string, total int) PageResult {
	s := ScoreSet{
		CrawlIndex:     total,
		Answerability:  total,
		Trust:          total,
		StructuredData: total,
		Consistency:    total,
		Total:          total,
	}
	return PageResult{URL: url, Status: StatusOK, Scores: &s}
}

func TestNewFailedResult(t *testing.T) {
	t.Parallel()

	r := NewFailedResult("https://example.com", errors.New("connection refused"))
	if r.Status != "fetch failed: connection refused" {
		t.Errorf("Status = %q", r.Status)
	}
	if r.Evaluated() || !r.Failed() || r.Total() != 0 {
		t.Error("failed result misreported")
	}
}

func TestNewDomainSummary(t *testing.T) {
	t.Parallel()

	results := []PageResult{
		evaluated("https://example.com/c", 70),
		evaluated("https://example.com/b", 30),
		NewFailedResult("https://example.com/down", errors.New("timeout")),
		evaluated("https://example.com/a", 30),
		evaluated("https://example.com/d", 90),
	}

	s := NewDomainSummary(results, 2)

	if s.Evaluated != 4 || s.Failed != 1 {
		t.Fatalf("Evaluated/Failed = %d/%d, want 4/1", s.Evaluated, s.Failed)
	}

	wantOrder := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
		"https://example.com/d",
	}
	for i, url := range wantOrder {
		if s.Ranking[i].URL != url {
			t.Errorf("Ranking[%d] = %s, want %s", i, s.Ranking[i].URL, url)
		}
	}
	if len(s.FixFirst) != 2 || s.FixFirst[1].URL != "https://example.com/b" {
		t.Errorf("FixFirst = %+v", s.FixFirst)
	}
	if s.Averages[TotalKey] != 55 {
		t.Errorf("average total = %d, want 55", s.Averages[TotalKey])
	}
	if s.Ratings[RatingPoor] != 2 || s.Ratings[RatingExcellent] != 1 || s.Ratings[RatingGood] != 1 {
		t.Errorf("Ratings = %v", s.Ratings)
	}
}

func TestNewDomainSummaryDefaultTopN(t *testing.T) {
	t.Parallel()

	var results []PageResult
	for i := range 15 {
		results = append(results, evaluated(fmt.Sprintf("https://example.com/%02d", i), i))
	}
	s := NewDomainSummary(results, 0)
	if len(s.FixFirst) != DefaultTopN {
		t.Errorf("len(FixFirst) = %d, want %d", len(s.FixFirst), DefaultTopN)
	}
}

func TestDomainSummaryWeakest(t *testing.T) {
	t.Parallel()

	empty := NewDomainSummary(nil, 0)
	if _, ok := empty.Weakest(); ok {
		t.Error("empty summary should have no weakest category")
	}

	s := ScoreSet{CrawlIndex: 80, Answerability: 60, Trust: 20, StructuredData: 40, Consistency: 50, Total: 50}
	sum := NewDomainSummary([]PageResult{{URL: "u", Status: StatusOK, Scores: &s}}, 0)
	if c, ok := sum.Weakest(); !ok || c != CategoryTrust {
		t.Errorf("Weakest = (%q, %v), want trust", c, ok)
	}
}
