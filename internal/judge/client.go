package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultAPIVersion is the Azure OpenAI API version used when none is set.
const DefaultAPIVersion = "2025-04-01-preview"

// Completion token budgets per request kind.
const (
	scoreMaxTokens  = 500
	pageMaxTokens   = 4096
	domainMaxTokens = 8192
)

// Config identifies the Azure OpenAI deployment used as the judge.
type Config struct {
	// Endpoint is the resource endpoint, e.g. https://name.openai.azure.com.
	Endpoint string

	// Deployment is the model deployment name.
	Deployment string

	// APIKey is sent in the api-key header.
	APIKey string

	// APIVersion is the api-version query parameter.
	APIVersion string
}

// Configured reports whether the judge can be called.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.Deployment != "" && c.APIKey != ""
}

// Client is an Azure OpenAI chat-completions client. It is safe for
// concurrent use.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger

	// sem bounds concurrent requests when set.
	sem *semaphore.Weighted
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithMaxConcurrent limits the number of in-flight requests. n <= 0
// means no limit.
func WithMaxConcurrent(n int) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.sem = semaphore.NewWeighted(int64(n))
		} else {
			cl.sem = nil
		}
	}
}

// New creates a Client. An unconfigured client is valid; its calls
// return ErrNotConfigured.
func New(cfg Config, opts ...Option) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	c := &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 120 * time.Second},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client can be called.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.Configured()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// completionsURL builds the chat-completions URL for the deployment.
func (c *Client) completionsURL() string {
	return strings.TrimRight(c.cfg.Endpoint, "/") +
		"/openai/deployments/" + url.PathEscape(c.cfg.Deployment) +
		"/chat/completions?api-version=" + url.QueryEscape(c.cfg.APIVersion)
}

// complete sends a single user prompt and returns the reply text.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return "", err
		}
		defer c.sem.Release(1)
	}

	reqJSON, err := json.Marshal(chatRequest{
		Messages:            []chatMessage{{Role: "user", Content: prompt}},
		MaxCompletionTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(reqJSON))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	c.logger.Debug("sending judge request",
		"deployment", c.cfg.Deployment,
		"payload_size", len(reqJSON))

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("judge request failed: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("judge HTTP error",
			"status", resp.StatusCode,
			"body", string(body),
			"duration", duration)
		return "", fmt.Errorf("judge returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decode judge response: %w", err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("judge response received",
		"duration", duration,
		"tokens", chat.Usage.TotalTokens,
		"finish_reason", chat.Choices[0].FinishReason)

	return chat.Choices[0].Message.Content, nil
}
