package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"llm-advisor/internal/infrastructure/advisorapi"
)

const (
	toolListCategories = "list_categories"
	toolGetModel       = "get_model"
)

const listCategoriesDescription = "Lists all available categories for LLM model recommendations. " +
	"Each category has a description explaining when to use it. " +
	"Use this to pick the right category for your use case, then call get_model with the category id."

const getModelDescription = "Gets the recommended LLM model for a category including up to two fallback models. " +
	"Returns both OpenRouter ids and Vercel AI SDK ids. " +
	"Optionally filter by provider (e.g. 'anthropic', 'openai', 'google')."

// GetModelArgs defines the arguments for the get_model tool.
type GetModelArgs struct {
	Category string  `json:"category"`
	Provider *string `json:"provider,omitempty"`
}

// AdvisorMCP exposes the advisor API as MCP tools.
type AdvisorMCP struct {
	api *advisorapi.Client
	log zerolog.Logger
}

func NewAdvisorMCP(api *advisorapi.Client, log zerolog.Logger) *AdvisorMCP {
	return &AdvisorMCP{
		api: api,
		log: log.With().Str("component", "advisor-mcp").Logger(),
	}
}

// NewServer builds the MCP server with all advisor tools registered.
func (a *AdvisorMCP) NewServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "llm-advisor",
		Version: "0.1.0",
	}
	server := mcp.NewServer(impl, nil)
	a.RegisterTools(server)
	return server
}

// RegisterTools registers the advisor tools with the MCP server.
func (a *AdvisorMCP) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        toolListCategories,
		Description: listCategoriesDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, *advisorapi.CategoriesResponse, error) {
		a.log.Debug().Str("tool", toolListCategories).Msg("MCP tool call received")

		result, err := a.api.Categories(ctx)
		if err != nil {
			a.log.Error().Err(err).Str("tool", toolListCategories).Msg("tool call failed")
			return errorResult(err), nil, nil
		}

		return jsonResult(result), result, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolGetModel,
		Description: getModelDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetModelArgs) (*mcp.CallToolResult, *advisorapi.GetModelResponse, error) {
		a.log.Debug().Str("tool", toolGetModel).Str("category", input.Category).Msg("MCP tool call received")

		if input.Category == "" {
			return errorResult(fmt.Errorf("parameter 'category' is required")), nil, nil
		}

		provider := ""
		if input.Provider != nil {
			provider = *input.Provider
		}

		result, err := a.api.Model(ctx, input.Category, provider)
		if err != nil {
			a.log.Error().Err(err).Str("tool", toolGetModel).Str("category", input.Category).Msg("tool call failed")
			return errorResult(err), nil, nil
		}

		return jsonResult(result), result, nil
	})
}

// jsonResult serializes a tool payload as pretty-printed text content.
func jsonResult(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// errorResult wraps a failure as an error-flagged payload instead of a
// protocol error, so agents can read the message.
func errorResult(err error) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		IsError: true,
	}
}
