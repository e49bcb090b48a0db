// Package logx configures the process logger. The terminal owns stdout,
// so logs go to a file; with no path configured the logger is a no-op
package logx

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// LevelByString resolves a level name, defaulting to info
func LevelByString(lvl string) zapcore.Level {
	level, ok := levelMap[lvl]
	if !ok {
		return zapcore.InfoLevel
	}
	return level
}

// New creates a file-backed sugared logger. An empty path yields a no-op
// logger. The returned close function flushes and releases the file
func New(path string, level zapcore.Level) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zap.NewAtomicLevelAt(level),
	)
	logger := zap.New(core)

	closeFn := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger.Sugar(), closeFn, nil
}
