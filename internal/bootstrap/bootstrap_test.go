package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-leaveflow/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes json lines to the rotating file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leaveflow.log")
		logger, err := NewLogger(
			config.AppConfig{Env: "test"},
			config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
		)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("leave submitted", zap.String("leave_id", "l-1"))
		_ = logger.Sync()

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"msg":"leave submitted"`)
		assert.Contains(t, string(raw), `"leave_id":"l-1"`)
		assert.NotContains(t, string(raw), "hidden")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := NewLogger(config.AppConfig{}, config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestZapAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := NewZapAuditLogger(zap.New(core))
	audit.now = func() time.Time { return time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC) }

	audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "2024-05-02T08:00:00Z", fields["timestamp"])
}
