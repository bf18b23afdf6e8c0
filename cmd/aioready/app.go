package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/aioready/internal/config"
	"github.com/nao1215/aioready/internal/fetcher"
	"github.com/nao1215/aioready/internal/judge"
	"github.com/nao1215/aioready/internal/pipeline"
	"github.com/nao1215/aioready/internal/signal"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadSettings layers the configuration file, .env files and the
// environment over the flag values already in cfg. Flags the user set
// explicitly keep their values.
func loadSettings(cmd *cobra.Command, cfg *config.Config) error {
	// An explicit -c path must exist; otherwise a missing file is fine.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		f, err := config.LoadConfigFile(path)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.ApplyFile(f, cmd.Flags().Changed)
	} else if cfg.ConfigFilePath != "" {
		return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.ApplyEnv()
	return nil
}

// evaluator bundles what the check and serve commands share: the batch
// processor and the judge client used for domain reports.
type evaluator struct {
	batch *pipeline.BatchProcessor
	judge *judge.Client
}

// newEvaluator wires the fetcher, judge, keyword registry and detectors
// described by cfg into a batch processor.
func newEvaluator(cfg *config.Config, logger *slog.Logger) (*evaluator, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("invalid keyword table: %w", err)
	}

	f := fetcher.New(
		fetcher.WithTimeout(cfg.Timeout),
		fetcher.WithUserAgent(cfg.UserAgent),
		fetcher.WithMaxBodySize(cfg.MaxBodySize),
		fetcher.WithLogger(logger),
	)

	var client *judge.Client
	if cfg.JudgeEnabled() {
		client = judge.New(judge.Config{
			Endpoint:   cfg.Judge.Endpoint,
			Deployment: cfg.Judge.Deployment,
			APIKey:     cfg.Judge.APIKey,
			APIVersion: cfg.Judge.APIVersion,
		},
			judge.WithMaxConcurrent(cfg.Judge.MaxConcurrent),
			judge.WithLogger(logger),
		)
		logger.Info("external judge enabled",
			"endpoint", cfg.Judge.Endpoint,
			"deployment", cfg.Judge.Deployment,
		)
	}

	var analyzerOpts []signal.AnalyzerOption
	if table := cfg.SchemaTable(); table != nil {
		analyzerOpts = append(analyzerOpts, signal.WithDetector(
			signal.NewStructuredDataDetector(signal.WithSchemaTable(table)),
		))
	}
	analyzer := signal.NewAnalyzer(analyzerOpts...)

	// The language model is loaded once and shared by every pipeline.
	var detector *signal.LanguageDetector
	if cfg.Locale == config.LocaleAuto {
		detector = signal.NewLanguageDetector(config.DefaultLocale)
	}

	pipelineOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	configOpts := []pipeline.DefaultPipelineOption{
		pipeline.WithLocale(cfg.Locale),
		pipeline.WithRegistry(registry),
		pipeline.WithLanguageDetector(detector),
		pipeline.WithAnalyzer(analyzer),
		pipeline.WithJudge(client),
		pipeline.WithPageReport(cfg.ReportEnabled()),
		pipeline.WithStepLogger(logger),
	}

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(f, pipelineOpts, configOpts...)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	return &evaluator{batch: bp, judge: client}, nil
}
