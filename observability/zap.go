package observability

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects how NewLogger builds its zap core.
type Config struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string

	// Development switches to a human-readable console encoder; production
	// uses JSON.
	Development bool

	// LogToFile adds a file sink next to stderr.
	LogToFile bool

	// LogDir is the directory for file sinks. Defaults to "logs".
	LogDir string
}

// zapLogger adapts *zap.Logger to the Logger interface.
type zapLogger struct {
	l *zap.Logger
}

// NewLogger builds a zap-backed Logger from cfg. With an empty level it
// returns a silent logger. The file sink is logs/dev.log in development mode
// and logs/prod.log otherwise.
//
//nolint:ireturn // factory returns the interface for dependency injection
func NewLogger(cfg Config) (Logger, error) {
	if cfg.Level == "" {
		return NoopLogger(), nil
	}

	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return nil, errors.Newf("unknown log level %q", cfg.Level)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}

	if cfg.LogToFile {
		dir := cfg.LogDir
		if dir == "" {
			dir = "logs"
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory")
		}
		name := "prod.log"
		if cfg.Development {
			name = "dev.log"
		}
		zcfg.OutputPaths = append(zcfg.OutputPaths, filepath.Join(dir, name))
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return &zapLogger{l: l}, nil
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, zfields(fields)...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, zfields(fields)...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, zfields(fields)...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, zfields(fields)...) }

//nolint:ireturn // must return the interface to satisfy Logger
func (z *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{l: z.l.With(zfields(fields)...)}
}

// Sync flushes buffered log entries when the underlying logger supports it.
func Sync(l Logger) {
	if z, ok := l.(*zapLogger); ok {
		_ = z.l.Sync()
	}
}

func zfields(fields []Field) []zap.Field {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = zap.Any(f.Key, f.Value)
	}
	return zf
}
