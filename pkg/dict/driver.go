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

package dict

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/quartzdb/quartz/pkg/common/moerr"
	"github.com/quartzdb/quartz/pkg/config"
	"github.com/quartzdb/quartz/pkg/logutil"
)

// BuildDictionaries builds the dictionary of every chunk that requests one,
// running one independent task per chunk.  scratch is the caller-owned
// bucket-table region, ScratchSize slots for the batch's dictionary
// identifiers; length zero is the valid "no dictionaries requested" signal.
// The call is synchronous: on return every requested chunk carries its
// final NumDictFragments, DictionarySize, TotalDictEntries, dense
// dictionary contents, and compacted per-row indices.
func BuildDictionaries(chunks []*ColumnChunk, scratch []uint32, params *config.BuilderParameters) error {
	if params == nil {
		params = &config.BuilderParameters{}
	}
	params.SetDefaultValues()
	b := newBuilder(params)

	numDicts := 0
	for _, chunk := range chunks {
		if chunk.HasDictionary && chunk.DictID >= numDicts {
			numDicts = chunk.DictID + 1
		}
	}
	if numDicts == 0 {
		return nil
	}
	if need := ScratchSize(numDicts); len(scratch) < need {
		return moerr.NewInvalidInputNoCtxf(
			"dictionary scratch holds %d slots, %d dictionaries need %d",
			len(scratch), numDicts, need)
	}
	zeroScratch(scratch)

	pool, err := ants.NewPool(int(params.Concurrency))
	if err != nil {
		return moerr.NewInternalErrorNoCtxf("create dictionary task pool: %v", err)
	}
	defer pool.Release()

	states := make([]*chunkState, len(chunks))
	errs := make([]error, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		if !chunk.HasDictionary {
			continue
		}
		i, chunk := i, chunk
		states[i] = newChunkState(b, chunk, scratch)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			errs[i] = states[i].run()
		}); err != nil {
			wg.Done()
			errs[i] = moerr.NewInternalErrorNoCtxf("submit dictionary task: %v", err)
		}
	}
	wg.Wait()

	for i, chunk := range chunks {
		if states[i] == nil {
			continue
		}
		if errs[i] != nil {
			return errs[i]
		}
		states[i].writeBack()
		if chunk.Partial() {
			logutil.Debug("chunk dictionary is partial",
				zap.Int("dictID", chunk.DictID),
				zap.Int("numDictFragments", chunk.NumDictFragments),
				zap.Int("fragments", len(chunk.Fragments)))
		}
	}
	return nil
}
