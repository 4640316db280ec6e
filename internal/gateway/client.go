// Package gateway is the single seam between dandata and the hosted
// Gemini API. Each call performs exactly one generateContent round trip
// with Google Search grounding requested: no retries, no streaming, no
// session state between calls.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 90 * time.Second

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"
)

// Config holds the client settings. Only APIKey is required; the rest
// default sensibly.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the Gemini generateContent endpoint. It holds no mutable
// state between calls and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a gateway client. A nil logger is replaced with a no-op
// logger so the TUI can run the client silently.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt to the provider with web-search grounding and
// returns the raw response. It fails with ErrMissingCredential before
// any network activity when no API key is configured, and with a
// *RequestError for every transport or provider fault.
func (c *Client) Generate(ctx context.Context, prompt string) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		Tools: []tool{
			{GoogleSearch: &googleSearch{}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &RequestError{Cause: fmt.Errorf("marshal request: %w", err)}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("generate request failed",
			zap.String("model", c.model), zap.Error(err))
		return nil, &RequestError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Cause: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("generate returned non-OK status",
			zap.String("model", c.model), zap.Int("status", resp.StatusCode))
		return nil, &RequestError{Cause: fmt.Errorf("status %d: %s", resp.StatusCode, string(body))}
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &RequestError{Cause: fmt.Errorf("parse response: %w", err)}
	}
	if parsed.Error != nil {
		return nil, &RequestError{Cause: fmt.Errorf("API error %d (%s): %s", parsed.Error.Code, parsed.Error.Status, parsed.Error.Message)}
	}

	c.logger.Debug("generate completed",
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("text_len", len(parsed.Text())),
		zap.Int("grounding_chunks", len(parsed.Chunks())))

	return &parsed, nil
}
