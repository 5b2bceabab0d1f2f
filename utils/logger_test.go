package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cppla/miniblog/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestRollingFileLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gin.log")
	logger, err := NewRollingFileLogger(path, "info", 1, 1, 1, false)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("/health")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"/health"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestInitLoggerReplacesGlobals(t *testing.T) {
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() { Logger, Sugar = prevLogger, prevSugar })

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, InitLogger(config.AppConfig{LogLevel: "warn", LogPath: path}))
	Sugar.Warnw("post store operation failed", "op", "scan")
	_ = Logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"op":"scan"`)
}
