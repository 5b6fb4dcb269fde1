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
	"go.uber.org/zap"

	"github.com/quartzdb/quartz/pkg/container/hashtable"
	"github.com/quartzdb/quartz/pkg/container/vector"
	"github.com/quartzdb/quartz/pkg/logutil"
)

// chunkState is the working set of one chunk task.  dictIndex and dictData
// are shared between the task's workers but partitioned by row; the bucket
// table is the only contended structure and is mutated by CAS only.
type chunkState struct {
	b     *builder
	chunk *ColumnChunk
	vec   *vector.Vector

	buckets hashtable.BucketTable

	// dictIndex[row]: rowRef during dedup/reconciliation, dense position
	// (or NullDictIndex) after compaction.
	dictIndex []uint32
	// dictData[row]: bucket chain link (next row + 1) during dedup; the
	// front of the array holds the dense dictionary contents afterward.
	dictData []uint32

	// current fragment's candidate list in working memory
	cand []uint32

	// per-worker reduction scratch, reused across rounds
	counts  []uint32
	sizes   []int64
	offsets []int

	totalEntries int
	totalSize    int64
	coveredRows  uint32
	numFragments int
}

func newChunkState(b *builder, chunk *ColumnChunk, scratch []uint32) *chunkState {
	return &chunkState{
		b:         b,
		chunk:     chunk,
		vec:       chunk.Vec,
		buckets:   hashtable.NewBucketTable(dictScratch(scratch, chunk.DictID)),
		dictIndex: make([]uint32, chunk.NumRows),
		dictData:  make([]uint32, chunk.NumRows),
		counts:    make([]uint32, b.workers),
		sizes:     make([]int64, b.workers),
		offsets:   make([]int, b.workers),
	}
}

// run processes the chunk: fragments are consumed in order until the budget
// accountant stops, then the whole chunk's rows are compacted.
func (s *chunkState) run() error {
	for _, frag := range s.chunk.Fragments {
		entries, size, err := s.dedupFragment(frag)
		if err != nil {
			return err
		}
		if !s.commitFragment(frag, entries, size) {
			logutil.Info("dictionary budget reached",
				zap.Int("dictID", s.chunk.DictID),
				zap.Int("fragments", s.numFragments),
				zap.Int("entries", s.totalEntries),
				zap.Int64("size", s.totalSize))
			break
		}
	}
	if err := s.compactIndices(); err != nil {
		return err
	}
	logutil.Debug("chunk dictionary built",
		zap.Int("dictID", s.chunk.DictID),
		zap.Int("entries", s.totalEntries),
		zap.Int64("size", s.totalSize),
		zap.Uint32("coveredRows", s.coveredRows))
	return nil
}

// writeBack copies the final statistics and output arrays into the chunk
// descriptor the caller handed in.
func (s *chunkState) writeBack() {
	s.chunk.NumDictFragments = s.numFragments
	s.chunk.DictionarySize = s.totalSize
	s.chunk.TotalDictEntries = s.totalEntries
	s.chunk.dictIndex = s.dictIndex
	s.chunk.dictData = s.dictData
	s.chunk.coveredRows = s.coveredRows
}

// loadFragment pulls the fragment's candidate row list into working memory
// and resets exactly those rows' dictData slots, so the fragment can be
// classified without cross-fragment interference.  No-op on an empty
// fragment.  The parallelFor join is the post-load barrier.
func (s *chunkState) loadFragment(frag *Fragment) ([]uint32, error) {
	if len(frag.Rows) == 0 {
		return nil, nil
	}
	s.cand = append(s.cand[:0], frag.Rows...)
	err := s.b.parallelFor(len(s.cand), func(_, beg, end int) error {
		for i := beg; i < end; i++ {
			s.dictData[s.cand[i]] = 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.cand, nil
}
