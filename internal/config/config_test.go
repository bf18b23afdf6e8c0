package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/aioready/internal/signal"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
	}
	if cfg.BatchSize != 10 {
		t.Errorf("expected BatchSize to be 10, got %d", cfg.BatchSize)
	}
	if cfg.Locale != "ja" {
		t.Errorf("expected Locale to be ja, got %q", cfg.Locale)
	}
	if cfg.MaxBodySize != 10*1024*1024 {
		t.Errorf("expected MaxBodySize to be 10MB, got %d", cfg.MaxBodySize)
	}
	if cfg.TopN != 10 {
		t.Errorf("expected TopN to be 10, got %d", cfg.TopN)
	}
	if cfg.Judge.APIVersion != DefaultAPIVersion {
		t.Errorf("expected APIVersion %q, got %q", DefaultAPIVersion, cfg.Judge.APIVersion)
	}
	if cfg.JudgeEnabled() {
		t.Error("judge should be disabled without credentials")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Targets = []string{"https://example.com"}
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "no target", modify: func(c *Config) { c.Targets = nil }, wantErr: ErrNoTarget},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "zero batch", modify: func(c *Config) { c.BatchSize = 0 }, wantErr: ErrInvalidBatchSize},
		{
			name:    "json and markdown",
			modify:  func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			wantErr: ErrConflictingReportFormats,
		},
		{name: "negative body size", modify: func(c *Config) { c.MaxBodySize = -1 }, wantErr: ErrInvalidMaxBodySize},
		{name: "negative top", modify: func(c *Config) { c.TopN = -1 }, wantErr: ErrInvalidTopN},
		{name: "unknown locale", modify: func(c *Config) { c.Locale = "fr" }, wantErr: ErrUnknownLocale},
		{name: "auto locale", modify: func(c *Config) { c.Locale = LocaleAuto }},
		{
			name: "locale defined in file",
			modify: func(c *Config) {
				c.Locale = "fr"
				c.File = &File{Keywords: map[string]signal.KeywordSet{"fr": {FAQ: []string{"FAQ"}}}}
			},
		},
		{
			name: "keyword table does not compile",
			modify: func(c *Config) {
				c.File = &File{Keywords: map[string]signal.KeywordSet{"ja": {FAQHeading: "("}}}
			},
			wantErr: ErrInvalidKeywords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("server validation ignores targets", func(t *testing.T) {
		t.Parallel()

		if err := NewConfig().ValidateServer(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestJudgeSwitches(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Judge.Endpoint = "https://example.openai.azure.com"
	cfg.Judge.Deployment = "gpt"
	cfg.Judge.APIKey = "secret"

	if !cfg.JudgeEnabled() || !cfg.ReportEnabled() {
		t.Fatal("expected judge and report enabled")
	}

	cfg.NoReport = true
	if !cfg.JudgeEnabled() || cfg.ReportEnabled() {
		t.Error("NoReport should only disable reports")
	}

	cfg.NoJudge = true
	if cfg.JudgeEnabled() || cfg.ReportEnabled() {
		t.Error("NoJudge should disable both")
	}
}

const sampleFile = `
locale: en
batch: 4
top: 3
fetch:
  timeout: 45s
  user_agent: test-agent
  max_body_size: 2048
judge:
  endpoint: https://example.openai.azure.com/
  deployment: gpt
  api_version: "2024-10-21"
  max_concurrent: 2
keywords:
  en:
    faq: ["Questions"]
  fr:
    faq: ["Foire aux questions"]
    faq_heading: "(?i)FAQ|questions"
schema_table:
  - type: Recipe
    points: 40
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads every section", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), DefaultConfigFile, sampleFile)
		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Locale != "en" || f.Batch != 4 || f.Top != 3 {
			t.Errorf("unexpected top-level values %+v", f)
		}
		if f.Fetch.Timeout != 45*time.Second || f.Fetch.UserAgent != "test-agent" || f.Fetch.MaxBodySize != 2048 {
			t.Errorf("unexpected fetch settings %+v", f.Fetch)
		}
		if f.Judge.Deployment != "gpt" || f.Judge.MaxConcurrent != 2 {
			t.Errorf("unexpected judge settings %+v", f.Judge)
		}
		if len(f.Keywords) != 2 || f.Keywords["fr"].FAQ[0] != "Foire aux questions" {
			t.Errorf("unexpected keywords %+v", f.Keywords)
		}
		if len(f.SchemaTable) != 1 || f.SchemaTable[0].Type != "Recipe" || f.SchemaTable[0].Points != 40 {
			t.Errorf("unexpected schema table %+v", f.SchemaTable)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "bad.yaml", "batch: [")
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "empty.yaml", "")
		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Keywords == nil {
			t.Error("expected initialized keyword map")
		}
	})
}

func TestApplyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), DefaultConfigFile, sampleFile)
	f, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("file values fill unset flags", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(f, nil)

		if cfg.Locale != "en" || cfg.BatchSize != 4 || cfg.TopN != 3 || cfg.Timeout != 45*time.Second {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.UserAgent != "test-agent" || cfg.MaxBodySize != 2048 {
			t.Errorf("unexpected fetch config %q %d", cfg.UserAgent, cfg.MaxBodySize)
		}
		if cfg.Judge.APIVersion != "2024-10-21" || cfg.Judge.APIKey != "" {
			t.Errorf("unexpected judge config %+v", cfg.Judge)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.BatchSize = 7
		cfg.ApplyFile(f, func(flag string) bool { return flag == "batch" })

		if cfg.BatchSize != 7 {
			t.Errorf("expected flag batch 7, got %d", cfg.BatchSize)
		}
		if cfg.Locale != "en" {
			t.Errorf("expected file locale, got %q", cfg.Locale)
		}
	})

	t.Run("builds registry and schema table", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(f, nil)

		r, err := cfg.Registry()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Has("fr") || !r.Has("en") || !r.Has("ja") {
			t.Errorf("unexpected locales %v", r.Locales())
		}
		if table := cfg.SchemaTable(); len(table) != 1 {
			t.Errorf("unexpected schema table %v", table)
		}
	})

	t.Run("invalid keyword regex", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(&File{Keywords: map[string]signal.KeywordSet{"ja": {FAQHeading: "("}}}, nil)
		if _, err := cfg.Registry(); err == nil {
			t.Error("expected compile error")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvEndpoint:   "https://env.openai.azure.com",
		EnvDeployment: "env-gpt",
		EnvAPIKey:     "env-secret",
		EnvMaxJudge:   "not-a-number",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := NewConfig()
	cfg.Judge.Endpoint = "https://file.openai.azure.com"
	cfg.applyEnv(lookup)

	if cfg.Judge.Endpoint != env[EnvEndpoint] || cfg.Judge.Deployment != "env-gpt" || cfg.Judge.APIKey != "env-secret" {
		t.Errorf("unexpected judge config %+v", cfg.Judge)
	}
	if cfg.Judge.APIVersion != DefaultAPIVersion {
		t.Errorf("unset version should keep default, got %q", cfg.Judge.APIVersion)
	}
	if cfg.Judge.MaxConcurrent != DefaultJudgeConcurrency {
		t.Errorf("invalid concurrency should be ignored, got %d", cfg.Judge.MaxConcurrent)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "AIOREADY_TEST_DOTENV=from-file\n")

	t.Setenv("AIOREADY_TEST_DOTENV", "")
	os.Unsetenv("AIOREADY_TEST_DOTENV") //nolint:errcheck // restored by t.Setenv

	if err := LoadEnvFiles(filepath.Join(dir, "missing"), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("AIOREADY_TEST_DOTENV"); got != "from-file" {
		t.Errorf("expected value from file, got %q", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "custom.yaml", "batch: 1")
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestReadTargets(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "urls.txt", "# pages\nhttps://a.example\n\n  https://b.example  \n")
	targets, err := ReadTargets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(targets) != 2 || targets[0] != "https://a.example" || targets[1] != "https://b.example" {
		t.Errorf("unexpected targets %v", targets)
	}

	if _, err := ReadTargets(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestXDGConfigFile(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("unexpected config dir %q", XDGConfigDir())
	}
	if filepath.Base(XDGConfigFile()) != "config.yaml" {
		t.Errorf("unexpected config file %q", XDGConfigFile())
	}
}
