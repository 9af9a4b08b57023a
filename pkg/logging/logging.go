// Package logging builds the application loggers. The TUI owns stdout,
// so its logger writes to a file; the relay logs to the console.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFileLogger returns a production logger writing JSON lines to path,
// creating parent directories as needed.
func NewFileLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// NewConsoleLogger returns a development logger for server processes.
func NewConsoleLogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

// Nop returns a logger that discards everything, for tests and for
// running without a writable log path.
func Nop() *zap.Logger {
	return zap.NewNop()
}
