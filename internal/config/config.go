package config

import (
	"time"

	"github.com/bestpacific/induction/internal/assistant"
)

// Config holds runtime settings for the induction portal.
//
// Fields:
//   - DatabasePath: filesystem path of the local SQLite state database.
//   - AssistantEndpoint / AssistantModel: where questions are sent and which
//     model answers them.
//   - AssistantAPIKey: credential for the assistant service (env only).
//   - AssistantTimeout: client-side deadline for one assistant request.
type Config struct {
	DatabasePath      string
	AssistantEndpoint string
	AssistantModel    string
	AssistantAPIKey   string
	AssistantTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "portal.db"
	c.AssistantEndpoint = assistant.DefaultEndpoint
	c.AssistantModel = assistant.DefaultModel
	c.AssistantTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and finally the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
