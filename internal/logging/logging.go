// Package logging builds the application logger. The TUI owns stdout and
// stderr, so logs always go to a rotating file under the config directory.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"metrodesk/internal/config"
)

// New returns a file-backed logger for the given logging config. dir is
// the directory to place the log file in when cfg.File is empty. verbose
// forces debug level regardless of the configured level.
func New(cfg config.LoggingConfig, dir string, verbose bool) *zap.Logger {
	path := cfg.File
	if path == "" {
		path = filepath.Join(dir, "metrodesk.log")
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})

	level := parseLevel(cfg.Level)
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), writer, level)

	return zap.New(core)
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
