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

package logutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfig_getter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel zapcore.Level
	}{
		{
			name:      "console debug",
			cfg:       LogConfig{Level: "debug", Format: "console"},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "json error",
			cfg:       LogConfig{Level: "error", Format: "json"},
			wantLevel: zapcore.ErrorLevel,
		},
		{
			name:      "bad level falls back to info",
			cfg:       LogConfig{Level: "loud", Format: "console"},
			wantLevel: zapcore.InfoLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, zap.NewAtomicLevelAt(tt.wantLevel).Level(), tt.cfg.getLevel().Level())
			require.NotNil(t, tt.cfg.getEncoder())
			require.Equal(t, getConsoleSyncer(), tt.cfg.getSyncer())
			require.Equal(t, 2, len(tt.cfg.getOptions()))
		})
	}
}

func TestFileSyncer(t *testing.T) {
	cfg := LogConfig{
		Level:    "info",
		Format:   "json",
		Filename: filepath.Join(t.TempDir(), "quartz.log"),
		MaxSize:  128,
	}
	require.NotEqual(t, getConsoleSyncer(), cfg.getSyncer())
}

func TestSetupLogger(t *testing.T) {
	logger := SetupLogger(&LogConfig{Level: "debug", Format: "console"})
	require.NotNil(t, logger)
	require.Same(t, logger, GetGlobalLogger())
	Debug("setup", zap.Int("workers", 4))
	Info("setup done")
}
