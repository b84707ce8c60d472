// Package logging builds the zap logger queueboard writes diagnostics to.
//
// The terminal belongs to the UI, so log output goes to a file. An empty path
// yields a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger appending to path, creating parent directories.
// The returned func flushes and closes the file.
func New(path string) (*zap.Logger, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(file),
		zap.NewAtomicLevelAt(zap.InfoLevel),
	)
	logger := zap.New(core).With(zap.Int("pid", os.Getpid()))

	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}
