package advisorapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CategoryInfo mirrors the advisor API category listing entry.
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	KeyProperty string `json:"keyProperty"`
}

// CategoriesResponse mirrors GET /api/categories.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// ModelPricing mirrors the per-million-token price triple.
type ModelPricing struct {
	Input  float64  `json:"input"`
	Output float64  `json:"output"`
	Cached *float64 `json:"cached,omitempty"`
}

// ModelInfo mirrors one model payload of the advisor API.
type ModelInfo struct {
	Name          string       `json:"name"`
	OpenRouterID  string       `json:"openrouterId"`
	VercelID      *string      `json:"vercelId"`
	Provider      string       `json:"provider"`
	Pricing       ModelPricing `json:"pricing"`
	ContextWindow *int         `json:"contextWindow"`
	Strengths     []string     `json:"strengths,omitempty"`
}

// GetModelResponse mirrors GET /api/model.
type GetModelResponse struct {
	Category    string      `json:"category"`
	Recommended ModelInfo   `json:"recommended"`
	Fallbacks   []ModelInfo `json:"fallbacks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ClientConfig captures the connection settings for the advisor API.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the advisor API over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient wires an HTTP client for the advisor API.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	http := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("User-Agent", "llm-advisor-mcp/1.0").
		SetTimeout(timeout).
		SetRetryCount(0)

	return &Client{http: http}
}

// Categories fetches the category listing.
func (c *Client) Categories(ctx context.Context) (*CategoriesResponse, error) {
	var result CategoriesResponse
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("query advisor API: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp.StatusCode(), apiErr)
	}

	return &result, nil
}

// Model resolves the recommended model for a category, optionally filtered
// by provider.
func (c *Client) Model(ctx context.Context, category, provider string) (*GetModelResponse, error) {
	var result GetModelResponse
	var apiErr errorResponse

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("category", category).
		SetResult(&result).
		SetError(&apiErr)
	if provider != "" {
		req.SetQueryParam("provider", provider)
	}

	resp, err := req.Get("/api/model")
	if err != nil {
		return nil, fmt.Errorf("query advisor API: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp.StatusCode(), apiErr)
	}

	return &result, nil
}

func apiError(status int, apiErr errorResponse) error {
	if apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("advisor API error: status %d", status)
}
