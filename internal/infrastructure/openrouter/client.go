package openrouter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"llm-advisor/internal/domain/catalog"
	"llm-advisor/internal/utils/platformerrors"
)

const modelsPath = "/models"

// ClientConfig captures the knobs exposed for the OpenRouter client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches the public model listing from the OpenRouter API.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ catalog.ListingClient = (*Client)(nil)

// NewClient wires an HTTP client for the OpenRouter catalog endpoint.
func NewClient(cfg ClientConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", "llm-advisor/1.0").
		SetTimeout(timeout).
		SetRetryCount(0)

	return &Client{http: http, log: log}
}

// modelListResponse mirrors the OpenRouter /models payload, reduced to the
// fields the synchronizer consumes.
type modelListResponse struct {
	Data []modelEntry `json:"data"`
}

type modelEntry struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ContextLength int          `json:"context_length"`
	Pricing       pricing      `json:"pricing"`
	Architecture  architecture `json:"architecture"`
}

type pricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

type architecture struct {
	Modality string `json:"modality"`
}

// ListModels retrieves the full upstream listing in one request.
func (c *Client) ListModels(ctx context.Context) ([]catalog.UpstreamModel, error) {
	var result modelListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(modelsPath)

	if err != nil {
		c.log.Error().Err(err).Str("endpoint", modelsPath).Msg("failed to query OpenRouter models API")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to query OpenRouter models API", err)
	}
	if resp.IsError() {
		c.log.Error().Int("status", resp.StatusCode()).Str("endpoint", modelsPath).Msg("OpenRouter models API error")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("OpenRouter models API error (status %d)", resp.StatusCode()), nil)
	}

	models := make([]catalog.UpstreamModel, 0, len(result.Data))
	for _, entry := range result.Data {
		models = append(models, catalog.UpstreamModel{
			ID:            entry.ID,
			Name:          entry.Name,
			ContextLength: entry.ContextLength,
			PromptPrice:   entry.Pricing.Prompt,
			CompletePrice: entry.Pricing.Completion,
			Modality:      entry.Architecture.Modality,
		})
	}

	c.log.Debug().Int("count", len(models)).Msg("fetched OpenRouter model listing")
	return models, nil
}
