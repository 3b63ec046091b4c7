package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aluiziolira/go-product-slider/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFlushesLogOnFailure(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "slider.log")
	cfg := config.DefaultConfig()
	cfg.LogFile = logPath
	cfg.Limit = 0

	assert.Equal(t, 1, run(cfg))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initialising catalog client")
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	closeLog()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
