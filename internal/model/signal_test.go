package model

import "testing"

func TestClampScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in, want int
	}{
		{-30, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{145, 100},
	}
	for _, tc := range testCases {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNewSignal(t *testing.T) {
	t.Parallel()

	evidence := []string{"a", "b"}
	s := NewSignal(CategoryTrust, 130, evidence)
	if s.Score != 100 {
		t.Errorf("Score = %d, want 100", s.Score)
	}
	evidence[0] = "changed"
	if s.Evidence[0] != "a" {
		t.Error("NewSignal did not copy evidence")
	}
	if s.Category != CategoryTrust {
		t.Errorf("Category = %q", s.Category)
	}
}

func TestJudgment(t *testing.T) {
	t.Parallel()

	t.Run("nil lookup falls back", func(t *testing.T) {
		t.Parallel()
		var j Judgment
		v, ok := j.Lookup(CategoryTrust, 42)
		if ok || v != 42 {
			t.Errorf("Lookup = (%d, %v), want (42, false)", v, ok)
		}
		if !j.Empty() {
			t.Error("nil judgment should be empty")
		}
	})

	t.Run("partial judgment", func(t *testing.T) {
		t.Parallel()
		j := NewJudgment(map[Category]int{
			CategoryTrust:      150,
			CategoryCrawlIndex: -5,
			Category("bogus"):  50,
		})
		if len(j) != 2 {
			t.Fatalf("len = %d, want 2", len(j))
		}
		if v, ok := j.Lookup(CategoryTrust, 0); !ok || v != 100 {
			t.Errorf("trust = (%d, %v), want (100, true)", v, ok)
		}
		if v, ok := j.Lookup(CategoryCrawlIndex, 7); !ok || v != 0 {
			t.Errorf("crawl = (%d, %v), want (0, true)", v, ok)
		}
		if v, ok := j.Lookup(CategoryConsistency, 7); ok || v != 7 {
			t.Errorf("consistency = (%d, %v), want (7, false)", v, ok)
		}
	})
}

func TestScoreSetWithAndGet(t *testing.T) {
	t.Parallel()

	var s ScoreSet
	for i, c := range Categories() {
		s = s.With(c, i*10)
	}
	for i, c := range Categories() {
		if got := s.Get(c); got != i*10 {
			t.Errorf("Get(%q) = %d, want %d", c, got, i*10)
		}
	}
	s = s.With(CategoryTrust, 999)
	if s.Trust != 100 {
		t.Errorf("With did not clamp: %d", s.Trust)
	}
	if s.Get(Category("bogus")) != 0 {
		t.Error("unknown category should read as 0")
	}
}
