package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultBatchSize is the number of pages evaluated concurrently.
	DefaultBatchSize = 10

	// DefaultTopN is the length of the "fix first" list.
	DefaultTopN = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "aioready"

	// DefaultUserAgent identifies aioready in HTTP requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; aioready/1.0; +https://github.com/nao1215/aioready)"

	// DefaultMaxBodySize limits the response body read per page.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultLocale is the keyword table used when none is configured.
	DefaultLocale = "ja"

	// LocaleAuto detects the keyword table per page.
	LocaleAuto = "auto"

	// DefaultAddr is the HTTP API listen address.
	DefaultAddr = ":8000"

	// DefaultAPIVersion is the Azure OpenAI API version.
	DefaultAPIVersion = "2025-04-01-preview"

	// DefaultJudgeConcurrency bounds concurrent judge requests.
	DefaultJudgeConcurrency = 4
)

// JudgeConfig holds the Azure OpenAI connection used as external judge.
type JudgeConfig struct {
	// Endpoint is the resource URL, e.g. https://example.openai.azure.com/.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Deployment is the model deployment name.
	Deployment string `yaml:"deployment,omitempty"`

	// APIKey authenticates requests. It is read from the environment only.
	APIKey string `yaml:"-"`

	// APIVersion is the api-version query parameter.
	APIVersion string `yaml:"api_version,omitempty"`

	// MaxConcurrent bounds in-flight judge requests.
	MaxConcurrent int `yaml:"max_concurrent,omitempty"`
}

// Configured reports whether every required judge setting is present.
func (j JudgeConfig) Configured() bool {
	return j.Endpoint != "" && j.Deployment != "" && j.APIKey != ""
}

// Config holds all configuration options for aioready.
// It is populated from CLI flags, the configuration file and the
// environment, and passed through the application explicitly.
type Config struct {
	// Timeout bounds each page fetch.
	Timeout time.Duration

	// BatchSize is the number of concurrent page evaluations.
	BatchSize int

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// File holds the loaded configuration file, if any.
	File *File

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// Targets is the list of URLs to evaluate.
	Targets []string

	// ListFile is a file with one URL per line, appended to Targets.
	ListFile string

	// Locale selects the keyword table: a locale name or LocaleAuto.
	Locale string

	// UserAgent is sent with every fetch.
	UserAgent string

	// MaxBodySize limits the bytes read per page. 0 uses the default.
	MaxBodySize int64

	// TopN is the length of the "fix first" list.
	TopN int

	// NoJudge disables the external judge even when configured.
	NoJudge bool

	// NoReport disables the advisory reports written by the judge.
	NoReport bool

	// Judge is the external judge connection.
	Judge JudgeConfig

	// Addr is the HTTP API listen address.
	Addr string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		BatchSize:   DefaultBatchSize,
		Locale:      DefaultLocale,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		TopN:        DefaultTopN,
		Addr:        DefaultAddr,
		Judge: JudgeConfig{
			APIVersion:    DefaultAPIVersion,
			MaxConcurrent: DefaultJudgeConcurrency,
		},
	}
}

// XDGConfigDir returns the XDG config directory for aioready.
// On Linux: ~/.config/aioready
// On macOS: ~/Library/Application Support/aioready
// On Windows: %APPDATA%\aioready
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the configuration file inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// JudgeEnabled reports whether the external judge should be called.
func (c *Config) JudgeEnabled() bool {
	return !c.NoJudge && c.Judge.Configured()
}

// ReportEnabled reports whether advisory reports should be requested.
func (c *Config) ReportEnabled() bool {
	return c.JudgeEnabled() && !c.NoReport
}

// Validate checks the configuration for the check command.
// It returns a specific error describing what is invalid.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	return c.ValidateServer()
}

// ValidateServer checks everything Validate does except the targets,
// which the HTTP API receives per request.
func (c *Config) ValidateServer() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.TopN < 0 {
		return ErrInvalidTopN
	}
	r, err := c.Registry()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeywords, err)
	}
	if !r.Has(c.Locale) {
		return ErrUnknownLocale
	}
	return nil
}
