package logging_test

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tv-frame/pkg/logging"
)

func TestSetup_StderrOnly(t *testing.T) {
	require.NoError(t, logging.Setup(logging.Options{}))
	defer logging.Close()

	assert.Empty(t, logging.GetLogPath())
}

func TestSetup_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, logging.Setup(logging.Options{Dir: dir}))
	defer logging.Close()

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, logging.LogFileName), logging.GetLogPath())
}

func TestSetup_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, logging.Setup(logging.Options{Dir: dir, Verbose: true}))
	log.Printf("load timeout changed to %d", 30000)
	logging.Debugf("focus moved to %d", 4)
	logging.Close()

	data, err := os.ReadFile(filepath.Join(dir, logging.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "load timeout changed to 30000")
	assert.Contains(t, string(data), "[DEBUG] focus moved to 4")
}

func TestDebugf_QuietWhenNotVerbose(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, logging.Setup(logging.Options{Dir: dir}))
	logging.Debugf("hidden")
	logging.Close()

	data, err := os.ReadFile(filepath.Join(dir, logging.LogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
}
