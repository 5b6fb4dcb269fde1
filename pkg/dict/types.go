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

// Package dict builds per-column-chunk dictionaries ahead of page
// serialization: it deduplicates each chunk's candidate values through a
// shared lock-free bucket table, repairs first-occurrence order after racy
// insertion, accounts fragment budgets against the hard entry and size caps,
// and compacts per-row indices into dense dictionary positions.
package dict

import (
	"github.com/quartzdb/quartz/pkg/container/vector"
)

const (
	// MaxDictEntries is the hard cap on distinct values per chunk dictionary.
	MaxDictEntries = 65536
	// MaxDictSize is the hard cap on a chunk dictionary's byte size.
	MaxDictSize = 512 << 10
	// MaxFragmentRows is the largest row window a fragment may cover.
	MaxFragmentRows = 5000

	// NullDictIndex marks rows outside dictionary coverage (null rows and
	// rows past the last included fragment).
	NullDictIndex = ^uint32(0)
)

// Fragment is a bounded row window within a chunk, the granularity at which
// the dictionary budget is checked.  Rows lists the planner's candidate rows
// (chunk-relative, ascending, null rows already filtered out); NumDictVals
// and DictDataSize start as the
// planner's preliminary estimates and are shrunk to verified values once the
// fragment has been deduplicated.
type Fragment struct {
	NumRows      uint32
	NumDictVals  uint32
	DictDataSize int64
	Rows         []uint32
}

// ColumnChunk identifies a contiguous row range of one column and carries
// the dictionary accumulators the serializer reads afterward.  The fragment
// planner populates everything up to Fragments before the builder runs.
type ColumnChunk struct {
	StartRow      int64
	NumRows       uint32
	HasDictionary bool
	// DictID selects which bucket-table region of the shared scratch this
	// chunk uses.  Chunks processed in one builder invocation must not
	// share a DictID.
	DictID    int
	Fragments []*Fragment
	// Vec is the chunk's column data, NumRows rows long.
	Vec *vector.Vector

	// Outputs, written back by the driver.
	NumDictFragments int
	DictionarySize   int64
	TotalDictEntries int

	dictIndex   []uint32
	dictData    []uint32
	coveredRows uint32
}

// DictData returns the dense dictionary contents: representative row numbers
// in ascending first-occurrence order.
func (c *ColumnChunk) DictData() []uint32 {
	if c.dictData == nil {
		return nil
	}
	return c.dictData[:c.TotalDictEntries]
}

// DictIndex returns the per-row dense dictionary positions.  Rows outside
// dictionary coverage hold NullDictIndex.
func (c *ColumnChunk) DictIndex() []uint32 {
	return c.dictIndex
}

// CoveredRows returns how many leading rows of the chunk the dictionary
// covers; rows at or past this boundary must be plain encoded.
func (c *ColumnChunk) CoveredRows() uint32 {
	return c.coveredRows
}

// Partial reports whether the budget cap excluded trailing fragments.
func (c *ColumnChunk) Partial() bool {
	return c.NumDictFragments < len(c.Fragments)
}
