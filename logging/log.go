// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging builds the console loggers used by this repo's
// binaries. The sampler packages themselves never log.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level wraps the zap levels this repo actually uses.
type Level = zapcore.Level

const (
	Debug = zapcore.DebugLevel
	Info  = zapcore.InfoLevel
	Warn  = zapcore.WarnLevel
	Error = zapcore.ErrorLevel
)

// ToLevel parses a level name case-insensitively.
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN":
		return Warn, nil
	case "ERROR":
		return Error, nil
	default:
		return Info, fmt.Errorf("unknown log level: %q", l)
	}
}

// NewLogger returns a console logger named [prefix] that writes entries
// at or above [level] to [w].
func NewLogger(prefix string, level Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	logger := zap.New(core)
	if prefix != "" {
		logger = logger.Named(prefix)
	}
	return logger
}
