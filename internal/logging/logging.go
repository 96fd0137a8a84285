/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Verbosity levels for logger.V(...)
const (
	DEBUG = 1
	TRACE = 2
)

// Log is the process wide logger. It discards until Setup or NewTestLogger runs.
var Log = logr.Discard()

// Options configures the process logger.
type Options struct {
	// Level is one of error, info, debug or trace.
	Level string
	// JSON selects the JSON encoder instead of the console one.
	JSON bool
	// File, when set, sends logs to a rotated file instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ParseLevel maps a level name to the zap level logr verbosity translates to.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New builds a logr.Logger backed by zap.
func New(opts Options) (logr.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}

	var sink io.Writer = os.Stderr
	if opts.File != "" {
		sink = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
	}
	return NewWithWriter(sink, level, opts.JSON || opts.File != ""), nil
}

// NewWithWriter builds a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level zapcore.Level, json bool) logr.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zapr.NewLogger(zap.New(core))
}

// Setup builds the process logger from opts and installs it as Log.
func Setup(opts Options) (logr.Logger, error) {
	logger, err := New(opts)
	if err != nil {
		return logger, err
	}
	Log = logger
	return logger, nil
}

// NewTestLogger installs a development logger writing to stderr at trace level.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	Log = zapr.NewLogger(zap.Must(cfg.Build()))
	return Log
}
