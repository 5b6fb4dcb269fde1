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

package config

import (
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/quartzdb/quartz/pkg/common/moerr"
	"github.com/quartzdb/quartz/pkg/logutil"
)

const (
	// defaultRowsPerBatch is the number of candidate rows handed to the
	// worker group per hashing round.
	defaultRowsPerBatch = 1024

	// defaultMaxChainHops bounds representative-chain resolution.  The
	// construction keeps chains at three hops; one extra hop of slack covers
	// the window in which a demoted representative is being rewritten.
	defaultMaxChainHops = 4

	// maxWorkers caps the cooperative group size within one chunk task.
	maxWorkers = 1024
)

// BuilderParameters tunes the dictionary builder.
type BuilderParameters struct {
	// NumWorkers is the cooperative worker group size used within one
	// column chunk task. default: runtime.NumCPU(), capped at 1024
	NumWorkers int64 `toml:"numWorkers"`

	// RowsPerBatch is the candidate batch size per hashing round.
	// default: 1024
	RowsPerBatch int64 `toml:"rowsPerBatch"`

	// MaxChainHops bounds the representative-chain walk before the builder
	// fails fast with a diagnostic. default: 4
	MaxChainHops int64 `toml:"maxChainHops"`

	// Concurrency is the maximum number of column chunks processed at
	// once. default: runtime.NumCPU()
	Concurrency int64 `toml:"concurrency"`

	Log logutil.LogConfig `toml:"log"`
}

// SetDefaultValues fills in zero-valued fields.
func (bp *BuilderParameters) SetDefaultValues() {
	if bp.NumWorkers <= 0 {
		bp.NumWorkers = int64(runtime.NumCPU())
	}
	if bp.NumWorkers > maxWorkers {
		bp.NumWorkers = maxWorkers
	}
	if bp.RowsPerBatch <= 0 {
		bp.RowsPerBatch = defaultRowsPerBatch
	}
	if bp.MaxChainHops <= 0 {
		bp.MaxChainHops = defaultMaxChainHops
	}
	if bp.Concurrency <= 0 {
		bp.Concurrency = int64(runtime.NumCPU())
	}
	if bp.Log.Level == "" {
		bp.Log.Level = "info"
	}
	if bp.Log.Format == "" {
		bp.Log.Format = "console"
	}
}

// ParseDictConfigFile loads BuilderParameters from a toml file and applies
// defaults for anything the file leaves unset.
func ParseDictConfigFile(path string) (*BuilderParameters, error) {
	var bp BuilderParameters
	if _, err := toml.DecodeFile(path, &bp); err != nil {
		return nil, moerr.NewBadConfigNoCtx(err.Error())
	}
	bp.SetDefaultValues()
	return &bp, nil
}
