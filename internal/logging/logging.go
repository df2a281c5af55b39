// Package logging builds the zap logger shared by the grid engine and the UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a no-op logger unless debug is set, in which case every
// record down to debug level is written as JSON lines to path. The file is
// truncated on open. The returned close func flushes and closes it.
func New(debug bool, path string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating debug log directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	logger := zap.New(core).With(zap.String("log_file", path))
	logger.Debug("debug start", zap.String("time", time.Now().Format(time.RFC3339)))

	closeFn := func() {
		logger.Debug("debug end", zap.String("time", time.Now().Format(time.RFC3339)))
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}

// Console returns a development logger writing to stderr, used by the
// headless commands when --debug is set.
func Console(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
