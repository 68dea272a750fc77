package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metrodesk/internal/config"
)

func TestNew_WritesToFileInDir(t *testing.T) {
	dir := t.TempDir()
	logger := New(config.LoggingConfig{Level: "info", MaxSizeMB: 1, MaxBackups: 1}, dir, false)

	logger.Info("hello", zap.String("k", "v"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "metrodesk.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	dir := t.TempDir()
	logger := New(config.LoggingConfig{Level: "error", MaxSizeMB: 1, MaxBackups: 1}, dir, true)

	logger.Debug("noisy")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "metrodesk.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "noisy")
}

func TestNew_LevelFiltersBelow(t *testing.T) {
	dir := t.TempDir()
	logger := New(config.LoggingConfig{Level: "warn", MaxSizeMB: 1, MaxBackups: 1}, dir, false)

	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "metrodesk.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}
