package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gemdynamics/pulse/internal/pulse"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, pulse.DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, "1m", cfg.Timeout)
	require.Equal(t, 1, cfg.Version)

	// First load materializes the file
	_, err = os.Stat(ConfigPath())
	require.NoError(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Defaults()
	cfg.BaseURL = "http://localhost:8080"
	cfg.Timeout = "30s"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", loaded.BaseURL)
	require.Equal(t, "30s", loaded.Timeout)
}

func TestLoad_FillsMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pulse")
	require.NoError(t, os.MkdirAll(dir, 0755))
	partial := "base_url = \"http://localhost:9999\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.toml"), []byte(partial), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999", cfg.BaseURL)
	require.Equal(t, "1m", cfg.Timeout)
	require.Equal(t, 1, cfg.Version)
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pulse")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.toml"), []byte("base_url = ["), 0644))

	_, err := Load()
	require.Error(t, err)
}

func TestParseTimeout(t *testing.T) {
	cfg := &Config{Timeout: "45s"}
	d, err := cfg.ParseTimeout()
	require.NoError(t, err)
	require.Equal(t, 45*time.Second, d)

	cfg.Timeout = "0"
	d, err = cfg.ParseTimeout()
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), d)

	cfg.Timeout = "soon"
	_, err = cfg.ParseTimeout()
	require.Error(t, err)
}

func TestValidateBaseURL(t *testing.T) {
	require.NoError(t, ValidateBaseURL("https://pulse.gemdynamics.dev"))
	require.NoError(t, ValidateBaseURL("http://localhost:8080"))
	require.Error(t, ValidateBaseURL("pulse.gemdynamics.dev"))
	require.Error(t, ValidateBaseURL("ftp://example.com"))
	require.Error(t, ValidateBaseURL("https://"))
}
