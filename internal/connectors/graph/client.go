// Package graph is a client for the Microsoft Graph OneNote endpoints.
// It exposes lazy, cursor-following iterators over the paginated
// section and page listings plus a raw page content fetch. Requests
// carry a bearer token from the injected TokenProvider and are paced by
// a token-bucket limiter; there are no retries.
package graph

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.NotebookReader = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://graph.microsoft.com/v1.0"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is deliberately conservative; Graph
	// throttles OneNote API calls per app per user.
	DefaultRequestsPerSecond = 4.0
	DefaultBurstSize         = 4
)

// Config holds configuration for the Graph client.
type Config struct {
	// BaseURL is the Graph API base URL (default: the v1.0 endpoint).
	BaseURL string

	// Timeout bounds each individual request (default: 30s).
	// It does not bound the run as a whole.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate (default: 4).
	RequestsPerSecond float64

	// BurstSize is the maximum request burst (default: 4).
	BurstSize int
}

// Client wraps the Graph OneNote REST endpoints.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  driven.TokenProvider
	limiter *rate.Limiter
}

// NewClient creates a new Graph client with a token provider.
func NewClient(tokens driven.TokenProvider, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// get performs an authenticated GET and returns the response body.
// Any non-2xx status fails with an *APIError carrying status and body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", url)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), URL: url}
	}

	return body, nil
}

// PageContent fetches the raw HTML content of a page.
// The content type is not negotiated beyond "treat as markup".
func (c *Client) PageContent(ctx context.Context, pageID string) (string, error) {
	body, err := c.get(ctx, c.baseURL+"/me/onenote/pages/"+pageID+"/content")
	if err != nil {
		return "", err
	}
	return string(body), nil
}
