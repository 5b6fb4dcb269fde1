// Copyright 2024 QuartzDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil wraps zap with the logging conventions used across quartz:
// a process-global logger, console or json encoding, and lumberjack-backed
// file rotation when a filename is configured.
package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig is the serialized logging configuration.
type LogConfig struct {
	// Level is the minimum enabled level: debug, info, warn, error, fatal.
	Level string `toml:"level"`
	// Format is the encoder used for log output: console or json.
	Format string `toml:"format"`
	// Filename, when non-empty, sends output to a rotated file.
	Filename string `toml:"filename"`
	// MaxSize is the maximum size in MB of a log file before rotation.
	MaxSize int `toml:"max-size"`
	// MaxDays is the number of days to retain rotated files.
	MaxDays int `toml:"max-days"`
	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int `toml:"max-backups"`
}

var globalLogger atomic.Value

func init() {
	SetupLogger(&LogConfig{Level: "info", Format: "console"})
}

// SetupLogger builds the global logger from conf.  It is called once during
// process bootstrap; tests may call it again to redirect output.
func SetupLogger(conf *LogConfig) *zap.Logger {
	logger := zap.New(
		zapcore.NewCore(conf.getEncoder(), conf.getSyncer(), conf.getLevel()),
		conf.getOptions()...,
	)
	globalLogger.Store(logger)
	return logger
}

// GetGlobalLogger returns the process-global logger.
func GetGlobalLogger() *zap.Logger {
	return globalLogger.Load().(*zap.Logger)
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return level
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	cc := zap.NewProductionEncoderConfig()
	cc.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(cc)
	}
	return zapcore.NewConsoleEncoder(cc)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename != "" {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		})
	}
	return getConsoleSyncer()
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}
