package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/aioready/internal/blend"
	"github.com/nao1215/aioready/internal/extract"
	"github.com/nao1215/aioready/internal/fetcher"
	"github.com/nao1215/aioready/internal/judge"
	"github.com/nao1215/aioready/internal/signal"
)

// FetchStep downloads and parses the page. It is the only critical
// step: its failure stops the pipeline.
type FetchStep struct {
	fetcher *fetcher.Fetcher
}

// NewFetchStep creates a new fetch step.
func NewFetchStep(f *fetcher.Fetcher) *FetchStep {
	return &FetchStep{fetcher: f}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the page unless the evaluation already carries a document.
func (s *FetchStep) Do(ctx context.Context, ev *Evaluation) error {
	if ev.Document != nil {
		return nil
	}
	page, err := s.fetcher.Fetch(ctx, ev.URL)
	if err != nil {
		return err
	}
	ev.Document = page.Document
	return nil
}

// ExtractStep builds the salient-section digest.
type ExtractStep struct{}

// NewExtractStep creates a new extract step.
func NewExtractStep() *ExtractStep {
	return &ExtractStep{}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do stores the digest of the page.
func (s *ExtractStep) Do(_ context.Context, ev *Evaluation) error {
	if ev.Document == nil {
		return ErrNoDocument
	}
	ev.Digest = extract.Digest(ev.Document)
	return nil
}

// LocaleStep selects the keyword table for the page.
type LocaleStep struct {
	registry *signal.Registry
	locale   string
	detector *signal.LanguageDetector
	logger   *slog.Logger
}

// NewLocaleStep creates a locale step. With locale set to
// signal.LocaleAuto the page language is detected; detector may be nil
// otherwise.
func NewLocaleStep(registry *signal.Registry, locale string, detector *signal.LanguageDetector, logger *slog.Logger) *LocaleStep {
	if registry == nil {
		registry = signal.NewRegistry()
	}
	if locale == "" {
		locale = signal.DefaultLocale
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocaleStep{
		registry: registry,
		locale:   locale,
		detector: detector,
		logger:   logger,
	}
}

// Name returns the step name.
func (s *LocaleStep) Name() string {
	return "locale"
}

// Do resolves the locale and its keywords. An unknown locale falls
// back to the default table.
func (s *LocaleStep) Do(_ context.Context, ev *Evaluation) error {
	if ev.Document == nil {
		return ErrNoDocument
	}

	locale := s.locale
	if locale == signal.LocaleAuto {
		locale = signal.DefaultLocale
		if s.detector != nil {
			locale = s.detector.Detect(ev.Document.Text())
		}
	}

	kw, ok := s.registry.Lookup(locale)
	if !ok {
		s.logger.Debug("no keyword table for locale, using default",
			"url", ev.URL,
			"locale", locale,
		)
		locale = signal.DefaultLocale
		kw = signal.Japanese()
	}

	ev.Locale = locale
	ev.Keywords = kw
	return nil
}

// JudgeStep asks the external judge for per-category scores. A failure
// is recorded in JudgeStatus and scoring continues rule-only.
type JudgeStep struct {
	client *judge.Client
	logger *slog.Logger
}

// NewJudgeStep creates a judge step. A nil or unconfigured client
// makes the step record that no judge is available.
func NewJudgeStep(client *judge.Client, logger *slog.Logger) *JudgeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &JudgeStep{client: client, logger: logger}
}

// Name returns the step name.
func (s *JudgeStep) Name() string {
	return "judge"
}

// Do requests the judgment. It never fails the pipeline.
func (s *JudgeStep) Do(ctx context.Context, ev *Evaluation) error {
	if !s.client.Configured() {
		ev.JudgeStatus = judge.ErrNotConfigured.Error()
		return nil
	}

	j, err := s.client.Scores(ctx, ev.URL, ev.Digest)
	if err != nil {
		s.logger.Warn("judge unavailable, scoring rule-only",
			"url", ev.URL,
			"error", err,
		)
		ev.JudgeStatus = err.Error()
		ev.Judgment = nil
		return nil
	}

	ev.Judgment = j
	return nil
}

// DetectStep runs the rule-based detectors.
type DetectStep struct {
	analyzer *signal.Analyzer
}

// NewDetectStep creates a detect step. A nil analyzer uses the five
// built-in detectors.
func NewDetectStep(analyzer *signal.Analyzer) *DetectStep {
	if analyzer == nil {
		analyzer = signal.NewAnalyzer()
	}
	return &DetectStep{analyzer: analyzer}
}

// Name returns the step name.
func (s *DetectStep) Name() string {
	return "detect"
}

// Do stores one signal per category.
func (s *DetectStep) Do(_ context.Context, ev *Evaluation) error {
	if ev.Document == nil {
		return ErrNoDocument
	}
	ev.Signals = s.analyzer.Analyze(signal.NewInput(ev.Document, ev.URL, ev.Keywords))
	return nil
}

// BlendStep combines signals and judgment into the final scores.
type BlendStep struct{}

// NewBlendStep creates a new blend step.
func NewBlendStep() *BlendStep {
	return &BlendStep{}
}

// Name returns the step name.
func (s *BlendStep) Name() string {
	return "blend"
}

// Do stores the blended score set.
func (s *BlendStep) Do(_ context.Context, ev *Evaluation) error {
	scores := blend.Blend(ev.Signals, ev.Judgment)
	ev.Scores = &scores
	return nil
}

// ReportStep asks the judge for a Markdown advisory. Failures are
// replaced by a notice and never fail the pipeline.
type ReportStep struct {
	client *judge.Client
	logger *slog.Logger
}

// NewReportStep creates a report step.
func NewReportStep(client *judge.Client, logger *slog.Logger) *ReportStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportStep{client: client, logger: logger}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "report"
}

// Do writes the advisory report for a scored page.
func (s *ReportStep) Do(ctx context.Context, ev *Evaluation) error {
	if ev.Scores == nil {
		return nil
	}
	if !s.client.Configured() {
		ev.Report = judge.Notice(judge.ErrNotConfigured)
		return nil
	}

	report, err := s.client.PageReport(ctx, ev.URL, ev.Digest, *ev.Scores)
	if err != nil {
		s.logger.Warn("page report failed",
			"url", ev.URL,
			"error", err,
		)
		ev.Report = judge.Notice(err)
		return nil
	}
	ev.Report = report
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Locale is a keyword locale or signal.LocaleAuto.
	Locale string

	// Registry resolves locales to keyword tables.
	Registry *signal.Registry

	// LanguageDetector is used when Locale is signal.LocaleAuto.
	LanguageDetector *signal.LanguageDetector

	// Analyzer runs the detectors. Nil uses the built-in set.
	Analyzer *signal.Analyzer

	// Judge is the external judge. Nil or unconfigured means rule-only.
	Judge *judge.Client

	// PageReport enables the per-page advisory report.
	PageReport bool

	// Logger is shared by the steps.
	Logger *slog.Logger
}

// DefaultPipelineOption configures DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithLocale sets the keyword locale.
func WithLocale(locale string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Locale = locale
	}
}

// WithRegistry sets the keyword registry.
func WithRegistry(r *signal.Registry) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Registry = r
	}
}

// WithLanguageDetector sets the detector used for LocaleAuto.
func WithLanguageDetector(d *signal.LanguageDetector) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.LanguageDetector = d
	}
}

// WithAnalyzer sets the detector set.
func WithAnalyzer(a *signal.Analyzer) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Analyzer = a
	}
}

// WithJudge sets the external judge.
func WithJudge(j *judge.Client) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Judge = j
	}
}

// WithPageReport enables the advisory report step.
func WithPageReport(enabled bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.PageReport = enabled
	}
}

// WithStepLogger sets the logger used by the steps.
func WithStepLogger(l *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = l
	}
}

// DefaultPipeline creates a pipeline with the standard evaluation steps:
// fetch, extract, locale, judge, detect, blend and, when enabled, report.
func DefaultPipeline(f *fetcher.Fetcher, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	cfg := &DefaultPipelineConfig{
		Locale: signal.DefaultLocale,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Locale == signal.LocaleAuto && cfg.LanguageDetector == nil {
		cfg.LanguageDetector = signal.NewLanguageDetector(signal.DefaultLocale)
	}

	p := New(pipelineOpts...)
	p.AddSteps(
		NewFetchStep(f),
		NewExtractStep(),
		NewLocaleStep(cfg.Registry, cfg.Locale, cfg.LanguageDetector, cfg.Logger),
		NewJudgeStep(cfg.Judge, cfg.Logger),
		NewDetectStep(cfg.Analyzer),
		NewBlendStep(),
	)
	if cfg.PageReport {
		p.AddStep(NewReportStep(cfg.Judge, cfg.Logger))
	}
	return p
}
