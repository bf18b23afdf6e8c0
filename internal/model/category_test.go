package model

import (
	"math"
	"testing"
)

func TestCategoriesOrder(t *testing.T) {
	t.Parallel()

	want := []Category{
		CategoryCrawlIndex,
		CategoryAnswerability,
		CategoryTrust,
		CategoryStructuredData,
		CategoryConsistency,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	if Categories()[0] != CategoryCrawlIndex {
		t.Error("Categories() exposed internal state")
	}
}

func TestCategoryWeightsSumToOne(t *testing.T) {
	t.Parallel()

	var sum float64
	for _, c := range Categories() {
		sum += c.Weight()
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
	if Category("unknown").Weight() != 0 {
		t.Error("unknown category should weigh nothing")
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key    string
		want   Category
		wantOK bool
	}{
		{"crawl_index", CategoryCrawlIndex, true},
		{"Crawl/Index健全性", CategoryCrawlIndex, true},
		{"回答性", CategoryAnswerability, true},
		{"Answerability", CategoryAnswerability, true},
		{"E-E-A-T", CategoryTrust, true},
		{"信頼性", CategoryTrust, true},
		{"reliability", CategoryTrust, true},
		{"構造化データ", CategoryStructuredData, true},
		{"STRUCTURED_DATA", CategoryStructuredData, true},
		{"コンテンツ一貫性", CategoryConsistency, true},
		{"total", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCategory(tc.key)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tc.key, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	if got := CategoryTrust.Label(); got != "Trust (E-E-A-T proxy)" {
		t.Errorf("Label() = %q", got)
	}
	if got := Category("x").Label(); got != "x" {
		t.Errorf("unknown Label() = %q, want x", got)
	}
	if !CategoryConsistency.Valid() || Category("x").Valid() {
		t.Error("Valid() mismatch")
	}
}
