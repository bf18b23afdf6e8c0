package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/aioready/internal/model"
)

// scoringStep marks every evaluation as scored with its URL length as total.
type scoringStep struct {
	delay   time.Duration
	running atomic.Int32
	peak    atomic.Int32
	failFor string
}

func (s *scoringStep) Name() string { return "scoring" }

func (s *scoringStep) Do(_ context.Context, ev *Evaluation) error {
	n := s.running.Add(1)
	defer s.running.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(s.delay)

	if ev.URL == s.failFor {
		return errors.New("fetch refused")
	}
	ev.Scores = &model.ScoreSet{Total: len(ev.URL)}
	return nil
}

func TestBatchProcessorNew(t *testing.T) {
	t.Parallel()

	t.Run("creates processor with defaults", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() })
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
		if bp.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, WithConcurrency(0))
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
	})
}

func TestBatchProcessorProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("keeps input order and records failures", func(t *testing.T) {
		t.Parallel()

		step := &scoringStep{delay: 5 * time.Millisecond, failFor: "https://b.example"}
		p := New()
		p.AddStep(step)
		bp := NewBatchProcessor(func() *Pipeline { return p }, WithConcurrency(2))

		urls := []string{"https://a.example", "https://b.example", "https://cc.example"}
		results, err := bp.ProcessBatch(context.Background(), urls)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(urls) {
			t.Fatalf("expected %d results, got %d", len(urls), len(results))
		}
		for i, r := range results {
			if r.URL != urls[i] {
				t.Errorf("results[%d].URL = %q, want %q", i, r.URL, urls[i])
			}
		}
		if !results[1].Failed() {
			t.Errorf("expected second page to fail, got %q", results[1].Status)
		}
		if results[2].Total() != len(urls[2]) {
			t.Errorf("unexpected total %d", results[2].Total())
		}
	})

	t.Run("respects the concurrency limit", func(t *testing.T) {
		t.Parallel()

		step := &scoringStep{delay: 10 * time.Millisecond}
		p := New()
		p.AddStep(step)
		bp := NewBatchProcessor(func() *Pipeline { return p }, WithConcurrency(3))

		urls := make([]string, 12)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://example.com/%d", i)
		}
		if _, err := bp.ProcessBatch(context.Background(), urls); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if peak := step.peak.Load(); peak > 3 {
			t.Errorf("peak concurrency %d exceeds limit 3", peak)
		}
	})

	t.Run("cancelled batch fills every slot", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := New()
		p.AddStep(&scoringStep{})
		bp := NewBatchProcessor(func() *Pipeline { return p }, WithConcurrency(1))

		urls := []string{"https://a.example", "https://b.example"}
		results, err := bp.ProcessBatch(ctx, urls)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		for i, r := range results {
			if r.URL != urls[i] || r.Evaluated() {
				t.Errorf("results[%d] = %+v, want unevaluated %s", i, r, urls[i])
			}
		}
	})
}

func TestProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddStep(&scoringStep{})
	bp := NewBatchProcessor(func() *Pipeline { return p })

	var mu sync.Mutex
	seen := make(map[int]string)
	urls := []string{"https://a.example", "https://b.example"}
	err := bp.ProcessBatchWithCallback(context.Background(), urls, func(r model.PageResult, i int) {
		mu.Lock()
		defer mu.Unlock()
		seen[i] = r.URL
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, u := range urls {
		if seen[i] != u {
			t.Errorf("callback index %d got %q, want %q", i, seen[i], u)
		}
	}
}

func TestCleanURLs(t *testing.T) {
	t.Parallel()

	got := CleanURLs([]string{" https://a.example ", "", "   ", "https://b.example"})
	want := []string{"https://a.example", "https://b.example"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
