package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultBaseURL   = "https://api.anthropic.com/v1/"
	DefaultModel     = "claude-haiku-4-5-20251001"
	DefaultMaxTokens = 2048

	// MaxTokensCeiling bounds FINDWORD_MAX_TOKENS; a reply is at most ten short records.
	MaxTokensCeiling = 8192
)

// Config holds all runtime configuration for a lookup.
type Config struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	BaseURL   string `env:"ANTHROPIC_BASE_URL"  env-default:"https://api.anthropic.com/v1/"`
	Model     string `env:"CLAUDE_MODEL"        env-default:"claude-haiku-4-5-20251001"`
	MaxTokens int64  `env:"FINDWORD_MAX_TOKENS" env-default:"2048"`

	Verbose     bool `env:"FINDWORD_VERBOSE"`
	AlfredDebug bool `env:"alfred_debug"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
	}
}

// Load reads configuration from the process environment.
// Callers that want a .env file honored should load it into the environment first.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: read env: %w", err)
	}
	return Normalize(cfg), nil
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.MaxTokens > MaxTokensCeiling {
		cfg.MaxTokens = MaxTokensCeiling
	}
	return cfg
}

// DebugEnabled reports whether debug logging was requested, either directly
// or by the launcher's workflow debugger.
func (c Config) DebugEnabled() bool {
	return c.Verbose || c.AlfredDebug
}
