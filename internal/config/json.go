package config

import (
	"encoding/json"
	"os"

	"github.com/mkoval-dev/lockbox/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	StoreDriver string `json:"store_driver"`
	StoreDSN    string `json:"store_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c/-config flags; when absent, no JSON is
// loaded. Read or unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
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

	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.StoreDSN != "" {
		cfg.StoreDSN = jc.StoreDSN
	}
}
