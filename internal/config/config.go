// Package config loads runtime settings for the Lockbox CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - StoreDriver: backing store dialect, "sqlite" or "postgres".
//   - StoreDSN: sqlite file path or Postgres connection string.
type Config struct {
	StoreDriver string
	StoreDSN    string
}

// LoadDefaults populates c with sensible defaults: a local sqlite file
// in the working directory.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StoreDSN = "lockbox.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
