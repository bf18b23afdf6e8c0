package main

import (
	"errors"
	"io"
	"testing"

	"github.com/nao1215/aioready/internal/config"
)

func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()
	for _, name := range []string{"addr", "timeout", "batch", "config", "locale", "no-judge", "no-report", "json-log"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}
	if got := cmd.Flags().Lookup("addr").DefValue; got != config.DefaultAddr {
		t.Errorf("addr default = %q, want %q", got, config.DefaultAddr)
	}
}

func TestBuildServeConfig(t *testing.T) {
	t.Parallel()

	path := writeFile(t, ".aioready", "batch: 4\nfetch:\n  timeout: 45s\n")
	cmd := NewServeCmd()
	if err := cmd.ParseFlags([]string{"-c", path, "--addr", "127.0.0.1:9000", "--locale", "en"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildServeConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.BatchSize != 4 || cfg.Timeout.String() != "45s" {
		t.Errorf("batch = %d, timeout = %s, want file values", cfg.BatchSize, cfg.Timeout)
	}
	if cfg.Locale != "en" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if err := cfg.ValidateServer(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestRunServeCmdValidation(t *testing.T) {
	t.Parallel()

	path := writeFile(t, ".aioready", "top: 10\n")
	cmd := NewServeCmd()
	cmd.SetArgs([]string{"-c", path, "-t", "0s"})
	cmd.SetOut(io.Discard)

	if err := cmd.Execute(); !errors.Is(err, config.ErrInvalidTimeout) {
		t.Errorf("expected ErrInvalidTimeout, got %v", err)
	}
}
