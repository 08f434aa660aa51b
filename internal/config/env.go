package config

import "os"

// parseEnv overlays Config with values from the environment. Only the
// assistant API key comes from here: it is a secret and deliberately has no
// flag or JSON counterpart.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("API_KEY"); ok {
		cfg.AssistantAPIKey = v
	}
}
