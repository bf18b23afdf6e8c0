package config

import (
	"maps"
	"slices"
	"time"

	"github.com/nao1215/aioready/internal/signal"
)

// FetchSettings overrides how pages are fetched.
type FetchSettings struct {
	// Timeout bounds a single fetch, e.g. "45s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent replaces the default User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// MaxBodySize limits the bytes read per page.
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`
}

// File represents the structure of the .aioready configuration file.
type File struct {
	// Locale selects the default keyword table.
	Locale string `yaml:"locale,omitempty"`

	// Batch is the number of concurrent evaluations.
	Batch int `yaml:"batch,omitempty"`

	// Top is the length of the "fix first" list.
	Top int `yaml:"top,omitempty"`

	// Fetch overrides fetch behavior.
	Fetch FetchSettings `yaml:"fetch,omitempty"`

	// Judge configures the external judge. The API key is never read
	// from the file.
	Judge JudgeConfig `yaml:"judge,omitempty"`

	// Keywords overrides keyword tables per locale. A new locale name
	// starts from the Japanese table.
	Keywords map[string]signal.KeywordSet `yaml:"keywords,omitempty"`

	// SchemaTable replaces the schema.org scoring table. Order matters:
	// the first matching entry wins for each type.
	SchemaTable []signal.SchemaWeight `yaml:"schema_table,omitempty"`
}

// ApplyFile copies the values set in f into c. Values whose flag was set
// on the command line are left alone; changed reports that by flag name
// and may be nil.
func (c *Config) ApplyFile(f *File, changed func(flag string) bool) {
	if f == nil {
		return
	}
	c.File = f
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if f.Locale != "" && !changed("locale") {
		c.Locale = f.Locale
	}
	if f.Batch != 0 && !changed("batch") {
		c.BatchSize = f.Batch
	}
	if f.Top != 0 && !changed("top") {
		c.TopN = f.Top
	}
	if f.Fetch.Timeout != 0 && !changed("timeout") {
		c.Timeout = f.Fetch.Timeout
	}
	if f.Fetch.UserAgent != "" {
		c.UserAgent = f.Fetch.UserAgent
	}
	if f.Fetch.MaxBodySize != 0 {
		c.MaxBodySize = f.Fetch.MaxBodySize
	}

	if f.Judge.Endpoint != "" {
		c.Judge.Endpoint = f.Judge.Endpoint
	}
	if f.Judge.Deployment != "" {
		c.Judge.Deployment = f.Judge.Deployment
	}
	if f.Judge.APIVersion != "" {
		c.Judge.APIVersion = f.Judge.APIVersion
	}
	if f.Judge.MaxConcurrent > 0 {
		c.Judge.MaxConcurrent = f.Judge.MaxConcurrent
	}
}

// Registry builds the keyword registry: the built-in tables with the
// configuration file's overrides applied in locale-name order.
func (c *Config) Registry() (*signal.Registry, error) {
	r := signal.NewRegistry()
	if c.File == nil {
		return r, nil
	}
	for _, locale := range slices.Sorted(maps.Keys(c.File.Keywords)) {
		if err := r.Override(locale, c.File.Keywords[locale]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SchemaTable returns the schema.org scoring table from the file, or
// nil when the built-in table should be used.
func (c *Config) SchemaTable() []signal.SchemaWeight {
	if c.File == nil || len(c.File.SchemaTable) == 0 {
		return nil
	}
	return slices.Clone(c.File.SchemaTable)
}
