package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvEndpoint   = "AZ_OPENAI_ENDPOINT"
	EnvDeployment = "AZ_OPENAI_DEPLOYMENT"
	EnvAPIKey     = "AZ_OPENAI_KEY"
	EnvAPIVersion = "AZ_OPENAI_API_VERSION"
	EnvMaxJudge   = "AIOREADY_JUDGE_CONCURRENCY"
)

// DefaultEnvFiles are loaded by LoadEnvFiles when no paths are given.
var DefaultEnvFiles = []string{".env.local", ".env"}

// LoadEnvFiles loads dotenv files into the process environment. Files
// that do not exist are skipped. Variables already set are never
// overwritten, so earlier files take precedence over later ones.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultEnvFiles
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv copies judge settings from the environment into c. Set
// variables override the configuration file.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Judge.Endpoint = v
	}
	if v, ok := lookup(EnvDeployment); ok && v != "" {
		c.Judge.Deployment = v
	}
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.Judge.APIKey = v
	}
	if v, ok := lookup(EnvAPIVersion); ok && v != "" {
		c.Judge.APIVersion = v
	}
	if v, ok := lookup(EnvMaxJudge); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Judge.MaxConcurrent = n
		}
	}
}
