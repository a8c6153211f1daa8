package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv enables debug-level logging when set to "1".
const DebugEnv = "NUMBERRUSH_DEBUG"

// New builds a JSON logger writing to path. The terminal belongs to the UI,
// so nothing is written to stdout or stderr.
func New(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// NewOrNop is New with a no-op fallback; logging never stops the game.
func NewOrNop(path string) *zap.Logger {
	l, err := New(path, os.Getenv(DebugEnv) == "1")
	if err != nil {
		return zap.NewNop()
	}
	return l
}
