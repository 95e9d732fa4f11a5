package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexitag/internal/config"
)

// chdirTemp runs the test body in an empty temp dir so stray config.yaml
// files in the working directory cannot leak in.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(old)
		viper.Reset()
	})
	viper.Reset()
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Addr)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.True(t, cfg.Dictionary.Seed)
	assert.Equal(t, 5, cfg.Preview.Rows)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := chdirTemp(t)

	content := `server:
  port: "9999"
store:
  backend: sqlite
session:
  ttl_minutes: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, config.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL())
}

func TestLoadConfigRejectsBadBackend(t *testing.T) {
	dir := chdirTemp(t)

	content := "store:\n  backend: postgres\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	dir := chdirTemp(t)

	content := "session:\n  ttl_minutes: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "ttl_minutes")
}
