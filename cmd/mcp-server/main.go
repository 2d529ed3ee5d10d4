package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"llm-advisor/internal/config"
	"llm-advisor/internal/infrastructure/advisorapi"
	"llm-advisor/internal/interfaces/mcpserver"
)

// Logs go to stderr: stdout carries the stdio MCP transport.
func newLogger(cfg *config.MCPConfig) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if cfg.LogFormat == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}

func main() {
	cfg, err := config.LoadMCP()
	if err != nil {
		fatalLog := zerolog.New(os.Stderr)
		fatalLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := advisorapi.NewClient(advisorapi.ClientConfig{
		BaseURL: cfg.AdvisorAPIURL,
		Timeout: cfg.HTTPTimeout,
	})
	server := mcpserver.NewAdvisorMCP(api, log).NewServer()

	log.Info().Str("advisor_api", cfg.AdvisorAPIURL).Msg("LLM advisor MCP server started")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("MCP server terminated")
	}
}
