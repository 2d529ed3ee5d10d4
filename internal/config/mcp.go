package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// MCPConfig holds the environment driven configuration for the MCP server.
type MCPConfig struct {
	AdvisorAPIURL string        `env:"ADVISOR_API_URL" envDefault:"http://localhost:3000"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadMCP parses environment variables into MCPConfig.
func LoadMCP() (*MCPConfig, error) {
	cfg := &MCPConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.AdvisorAPIURL); err != nil {
		return nil, fmt.Errorf("invalid ADVISOR_API_URL: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}
