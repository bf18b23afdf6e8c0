package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/aioready/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages evaluated at once.
const DefaultConcurrency = 10

// BatchProcessor evaluates many pages concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
type BatchProcessor struct {
	// pipelineFactory returns the pipeline used for each page.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent evaluations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent evaluations.
// Default is DefaultConcurrency if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch evaluates urls concurrently and returns one result per
// URL, in input order. Pages that fail are failed results, not errors.
// The error is non-nil only when ctx was cancelled; pages not evaluated
// by then carry the cancellation as their failure.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, urls []string) ([]model.PageResult, error) {
	results := make([]model.PageResult, len(urls))
	var mu sync.Mutex

	err := bp.ProcessBatchWithCallback(ctx, urls, func(result model.PageResult, index int) {
		mu.Lock()
		results[index] = result
		mu.Unlock()
	})

	for i, url := range urls {
		if results[i].Status == "" {
			cause := err
			if cause == nil {
				cause = context.Canceled
			}
			results[i] = model.NewFailedResult(url, cause)
		}
	}

	return results, err
}

// ProcessBatchWithCallback evaluates urls and calls callback for each
// completed page. This is useful for streaming results.
//
// The callback receives the result and the index of the URL in the
// original slice. It is called from the goroutine that finished the
// page, so it must be safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	urls []string,
	callback func(result model.PageResult, index int),
) error {
	bp.logger.Info("starting batch processing",
		"total_pages", len(urls),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("evaluating page",
				"url", url,
				"index", i+1,
				"total", len(urls),
			)

			ev := NewEvaluation(url)
			if err := bp.pipelineFactory().Execute(ctx, ev); err != nil {
				bp.logger.Warn("evaluation failed",
					"url", url,
					"error", err,
				)
			}

			callback(ev.Result(), i)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch processing complete",
		"total_pages", len(urls),
		"elapsed", time.Since(startTime),
	)

	return err
}

// CleanURLs trims each URL and drops blank entries, keeping order.
func CleanURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
