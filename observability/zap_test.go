package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty level is silent", cfg: Config{}},
		{name: "debug", cfg: Config{Level: "debug"}},
		{name: "info production", cfg: Config{Level: "info"}},
		{name: "warn development", cfg: Config{Level: "warn", Development: true}},
		{name: "error", cfg: Config{Level: "error"}},
		{name: "unknown level", cfg: Config{Level: "trace"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)

			// Exercise the full surface; none of these may panic.
			logger.Debug("debug message", Field{Key: "k", Value: 1})
			logger.Info("info message")
			logger.Warn("warn message", Field{Key: "k", Value: "v"})
			logger.Error("error message")
			logger.With(Field{Key: "component", Value: "test"}).Info("scoped")
			Sync(logger)
		})
	}
}

func TestNewLoggerFileSink(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := NewLogger(Config{Level: "info", Development: true, LogToFile: true, LogDir: dir})
	require.NoError(t, err)

	logger.Info("written to file")
	Sync(logger)

	data, err := os.ReadFile(filepath.Join(dir, "dev.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	logger := NoopLogger()
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	assert.NotNil(t, logger.With(Field{Key: "k", Value: "v"}))
	Sync(logger)
}

func TestNoopMetricsRecorder(t *testing.T) {
	t.Parallel()

	m := NoopMetricsRecorder()
	m.RecordHTTPRequest("GET", "/api/s/default/stat/device", 200, 0)
	m.RecordRetry(1, "/api/s/default/stat/device")
	m.RecordRateLimit("/api/s/default/stat/device", 0)
	m.RecordError("ListDevices", "api_error")
}
