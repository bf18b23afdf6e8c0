package main

import (
	"fmt"
	"log/slog"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/nao1215/aioready/internal/config"
	"github.com/nao1215/aioready/internal/log"
	"github.com/nao1215/aioready/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the AIO readiness HTTP API",
		Long: `Serve exposes the evaluator over HTTP.

Endpoints:
  GET  /           health check
  POST /aio-check  {"urls": ["https://example.com/a", ...]}

Each URL yields one row with the total score, the five category scores
and, when the judge is configured, the advisory report.

Examples:
  aioready serve
  aioready serve --addr 127.0.0.1:9000 --json-log`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each page fetch")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent page evaluations per request")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .aioready in current or home directory)")
	cmd.Flags().String("locale", config.DefaultLocale,
		"Keyword table: ja, en, auto or a locale defined in the config file")
	cmd.Flags().Bool("no-judge", false,
		"Use rule-based scores only, even when the judge is configured")
	cmd.Flags().Bool("no-report", false,
		"Skip the advisory reports written by the judge")
	cmd.Flags().Bool("json-log", false, "Write logs as JSON")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	jsonLog, err := cmd.Flags().GetBool("json-log")
	if err != nil {
		return err
	}
	// The server always logs at least Info so requests are visible.
	logger := log.NewSecureLogger(os.Stderr, true)
	if jsonLog {
		logger = log.NewSecureJSONLogger(os.Stderr, true)
	}
	slog.SetDefault(logger)

	ev, err := newEvaluator(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(ev.batch, server.WithLogger(logger)).ListenAndServe(ctx, cfg.Addr)
}

// buildServeConfig creates a Config from the serve command's flags.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if cfg.Addr, err = flags.GetString("addr"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
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
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadSettings(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
