package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/aioready/internal/config"
	"github.com/nao1215/aioready/internal/log"
	"github.com/nao1215/aioready/internal/model"
	"github.com/nao1215/aioready/internal/pipeline"
	"github.com/nao1215/aioready/internal/report"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url...]",
		Short: "Score web pages for AIO readiness",
		Long: `Check fetches each page and scores it 0-100 in five categories:

- Crawl/Index health (title, description, robots, canonical)
- Answerability (headings, summaries, definitions, FAQ and HowTo)
- Trust (author, operator, contact, update dates, references)
- Structured data (schema.org JSON-LD and microdata)
- Content consistency (depth and heading structure)

When an Azure OpenAI judge is configured its scores are blended with the
rule-based ones and an advisory report is written for every page. With
more than one page a domain rollup ranks the pages to fix first.

Examples:
  # Score a single page
  aioready check https://example.com/guide

  # Score every URL in a file, four at a time
  aioready check --list urls.txt -b 4

  # Markdown report written to a file
  aioready check -m -o report/aio.md https://example.com/a https://example.com/b

  # Rule-based scores only, English keyword tables
  aioready check --no-judge --locale en https://example.com/guide`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each page fetch")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent page evaluations")
	cmd.Flags().StringP("list", "l", "",
		"File with one URL per line (# starts a comment)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .aioready in current or home directory)")
	cmd.Flags().String("locale", config.DefaultLocale,
		"Keyword table: ja, en, auto or a locale defined in the config file")
	cmd.Flags().Bool("no-judge", false,
		"Use rule-based scores only, even when the judge is configured")
	cmd.Flags().Bool("no-report", false,
		"Skip the advisory reports written by the judge")
	cmd.Flags().Int("top", config.DefaultTopN,
		"Number of pages in the domain \"fix first\" list")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCheck(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildConfig creates a Config from cobra command flags, then layers the
// configuration file and environment over it.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
		return nil, err
	}
	if cfg.ListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}
	if cfg.Locale, err = flags.GetString("locale"); err != nil {
		return nil, err
	}
	if cfg.NoJudge, err = flags.GetBool("no-judge"); err != nil {
		return nil, err
	}
	if cfg.NoReport, err = flags.GetBool("no-report"); err != nil {
		return nil, err
	}
	if cfg.TopN, err = flags.GetInt("top"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	targets := append([]string(nil), args...)
	if cfg.ListFile != "" {
		listed, err := config.ReadTargets(cfg.ListFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read URL list: %w", err)
		}
		targets = append(targets, listed...)
	}
	cfg.Targets = pipeline.CleanURLs(targets)

	if err := loadSettings(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCheck evaluates every target and writes the report to stdout or
// the configured report file.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	ev, err := newEvaluator(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting evaluation",
		"targets", len(cfg.Targets),
		"batchSize", cfg.BatchSize,
		"locale", cfg.Locale,
		"judge", cfg.JudgeEnabled(),
	)

	start := time.Now()
	results, err := ev.batch.ProcessBatch(ctx, cfg.Targets)
	if err != nil {
		return fmt.Errorf("evaluation interrupted: %w", err)
	}
	logger.Info("evaluation completed", "elapsed", time.Since(start).Round(time.Millisecond))

	var summary *model.DomainSummary
	if len(results) > 1 {
		withReport := cfg.ReportEnabled() && countEvaluated(results) > 1
		summary = pipeline.Rollup(ctx, results, cfg.TopN, ev.judge, withReport, logger)
	}

	return outputReport(cfg, stdout, results, summary)
}

// countEvaluated returns how many results carry scores.
func countEvaluated(results []model.PageResult) int {
	n := 0
	for _, r := range results {
		if r.Evaluated() {
			n++
		}
	}
	return n
}

// outputReport writes results in the requested format. A single page is
// written as a page report; several pages as a domain report. A JSON or
// Markdown report written to a file is echoed as text on stdout.
func outputReport(cfg *config.Config, stdout io.Writer, results []model.PageResult, summary *model.DomainSummary) error {
	writer := newReportWriter(cfg, stdout)
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		writer = newReportWriter(cfg, f)
		if cfg.JSONReport || cfg.MarkdownReport {
			writer = report.NewMultiWriter(writer, report.NewSimpleWriter(stdout, report.WithVerbose(cfg.Verbose)))
		}
	}

	if len(results) == 1 {
		_, err := writer.WritePage(&results[0])
		return err
	}
	_, err := writer.WriteDomain(results, summary)
	return err
}

// newReportWriter selects the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
