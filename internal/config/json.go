package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bestpacific/induction/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// expressed in whole seconds and copied into the runtime Config (which uses
// time.Duration).
type JsonConfig struct {
	DatabasePath      string `json:"database_path"`
	AssistantEndpoint string `json:"assistant_endpoint"`
	AssistantModel    string `json:"assistant_model"`
	AssistantTimeout  int    `json:"assistant_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; absent fields keep their
//     earlier values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AssistantEndpoint != "" {
		cfg.AssistantEndpoint = jc.AssistantEndpoint
	}
	if jc.AssistantModel != "" {
		cfg.AssistantModel = jc.AssistantModel
	}
	if jc.AssistantTimeout > 0 {
		cfg.AssistantTimeout = time.Duration(jc.AssistantTimeout) * time.Second
	}
}
