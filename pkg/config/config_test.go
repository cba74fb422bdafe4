package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tv-frame/pkg/config"
	"tv-frame/pkg/settings"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvTitle, config.EnvVideoDriver, config.EnvLoadTimeout, config.EnvLogDir} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.FromEnv()
	assert.Equal(t, config.DefaultTitle, cfg.Title)
	assert.Equal(t, settings.DefaultLoadTimeout, cfg.LoadTimeout)
	assert.Empty(t, cfg.LogDir)
	assert.Empty(t, cfg.VideoDriver)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvTitle, "Living Room")
	t.Setenv(config.EnvVideoDriver, "kmsdrm")
	t.Setenv(config.EnvLoadTimeout, "30000")
	t.Setenv(config.EnvLogDir, "/var/log/tv-frame")

	cfg := config.FromEnv()
	assert.Equal(t, "Living Room", cfg.Title)
	assert.Equal(t, "kmsdrm", cfg.VideoDriver)
	assert.Equal(t, int64(30000), cfg.LoadTimeout)
	assert.Equal(t, "/var/log/tv-frame", cfg.LogDir)
}

func TestFromEnv_BadTimeoutFallsBack(t *testing.T) {
	clearEnv(t)

	for _, raw := range []string{"abc", "-100", "0"} {
		t.Setenv(config.EnvLoadTimeout, raw)
		assert.Equal(t, settings.DefaultLoadTimeout, config.FromEnv().LoadTimeout, raw)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are set, even to ""
	require.NoError(t, os.Unsetenv(config.EnvLoadTimeout))
	t.Cleanup(func() { os.Unsetenv(config.EnvLoadTimeout) })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(config.EnvLoadTimeout+"=45000\n"), 0o644))

	cfg := config.Load(envFile)
	assert.Equal(t, int64(45000), cfg.LoadTimeout)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, config.DefaultTitle, cfg.Title)
}
