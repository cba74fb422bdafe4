package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tv-frame/pkg/config"
	"tv-frame/pkg/settings"
)

func resetFlags(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvTitle, config.EnvVideoDriver, config.EnvLoadTimeout, config.EnvLogDir} {
		t.Setenv(key, "")
	}
	RootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		require.NoError(t, f.Value.Set(f.DefValue))
	})
	envFile = filepath.Join(t.TempDir(), "missing.env")
}

func TestRootCmd_Flags(t *testing.T) {
	flags := RootCmd.PersistentFlags()

	for _, name := range []string{"env-file", "title", "load-timeout", "log-dir", "verbose"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "V", flags.Lookup("verbose").Shorthand)
}

func TestResolveConfig_Defaults(t *testing.T) {
	resetFlags(t)

	cfg := resolveConfig(RootCmd)
	assert.Equal(t, config.DefaultTitle, cfg.Title)
	assert.Equal(t, settings.DefaultLoadTimeout, cfg.LoadTimeout)
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvLoadTimeout, "5000")
	t.Setenv(config.EnvTitle, "Env Title")

	require.NoError(t, RootCmd.PersistentFlags().Set("load-timeout", "45000"))
	require.NoError(t, RootCmd.PersistentFlags().Set("title", "Flag Title"))
	require.NoError(t, RootCmd.PersistentFlags().Set("env-file", envFile))

	cfg := resolveConfig(RootCmd)
	assert.Equal(t, int64(45000), cfg.LoadTimeout)
	assert.Equal(t, "Flag Title", cfg.Title)
}

func TestResolveConfig_EnvWithoutFlags(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvLoadTimeout, "5000")

	cfg := resolveConfig(RootCmd)
	assert.Equal(t, int64(5000), cfg.LoadTimeout)
}

func TestVideoDriverCandidates(t *testing.T) {
	assert.Equal(t, []string{"cocoa", "software", "dummy"}, videoDriverCandidates("", "darwin"))

	linux := videoDriverCandidates("x11", "linux")
	assert.Equal(t, "x11", linux[0])
	assert.Equal(t, "kmsdrm", linux[1])
	assert.Len(t, linux, 7, "configured driver is not tried twice")
}

func TestRenderDriverFor(t *testing.T) {
	assert.Equal(t, "opengles2", renderDriverFor("kmsdrm"))
	assert.Equal(t, "opengl", renderDriverFor("cocoa"))
	assert.Equal(t, "software", renderDriverFor("fbcon"))
}
