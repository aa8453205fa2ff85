package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// serviceName is attached to every log entry.
const serviceName = "users-crud"

// Log is the process-wide SugaredLogger.
// It stays a no-op logger until Initialize is called, so packages can log from tests freely.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a JSON production logger at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": serviceName}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
