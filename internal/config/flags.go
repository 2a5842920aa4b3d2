package config

import (
	"flag"
	"os"

	"github.com/mkoval-dev/lockbox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   store driver, "sqlite" or "postgres"
//	-s string   store DSN (sqlite path or Postgres connection string)
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, so it does not interfere with flags defined by
// other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver (sqlite or postgres)")
	fs.StringVar(&cfg.StoreDSN, "s", cfg.StoreDSN, "store DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
