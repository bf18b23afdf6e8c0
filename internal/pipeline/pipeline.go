package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/aioready/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the evaluation filled in
// by the previous ones.
type Step interface {
	// Do executes the pipeline step. It returns an error only when the
	// page cannot be scored at all; non-critical failures are recorded
	// on the evaluation and return nil.
	Do(ctx context.Context, ev *Evaluation) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// A Pipeline holds no per-page state and may be shared by goroutines
// once all steps are added.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence. Cancellation is checked
// before each step. The first step error stops the pipeline and is both
// recorded in ev.Err and returned.
func (p *Pipeline) Execute(ctx context.Context, ev *Evaluation) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"url", ev.URL,
				"reason", ctx.Err(),
			)
			ev.Err = ctx.Err()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"url", ev.URL,
		)

		if err := step.Do(ctx, ev); err != nil {
			p.logger.Warn("step failed",
				"step", step.Name(),
				"url", ev.URL,
				"error", err,
			)
			ev.Err = err
			return err
		}

		ev.PerformedSteps = append(ev.PerformedSteps, step.Name())
	}

	return nil
}

// Evaluate runs the pipeline for url and returns the page result.
// A failed page is a result, not an error.
func (p *Pipeline) Evaluate(ctx context.Context, url string) model.PageResult {
	ev := NewEvaluation(url)
	_ = p.Execute(ctx, ev) //nolint:errcheck // recorded in ev.Err
	return ev.Result()
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
