package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "lockbox.db", cfg.StoreDSN)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_driver":"postgres","store_dsn":"postgres://localhost/lockbox"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"lockbox", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/lockbox", cfg.StoreDSN)
}

func TestParseJson_PartialOverlayKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_dsn":"other.db"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"lockbox", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "other.db", cfg.StoreDSN)
}

func TestParseFlags_Overlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"lockbox", "-s", "flag.db"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "flag.db", cfg.StoreDSN)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
}
