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
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"

	"github.com/quartzdb/quartz/pkg/common/moerr"
	"github.com/quartzdb/quartz/pkg/container/vector"
)

func TestBuildNoDictionariesRequested(t *testing.T) {
	defer leaktest.AfterTest(t)()
	chunks := []*ColumnChunk{
		{NumRows: 10, HasDictionary: false, Vec: vector.NewInt64(make([]int64, 10), nil)},
	}
	// zero scratch size is the valid "no dictionaries" signal
	require.NoError(t, BuildDictionaries(chunks, nil, nil))
	require.Equal(t, 0, chunks[0].TotalDictEntries)
	require.Nil(t, chunks[0].DictIndex())
}

func TestBuildScratchTooSmall(t *testing.T) {
	chunk := newTestChunk(0, vector.NewInt64([]int64{1, 2, 3}, nil), MaxFragmentRows)
	err := BuildDictionaries([]*ColumnChunk{chunk}, make([]uint32, 16), nil)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestBuildMultiChunkIsolation(t *testing.T) {
	defer leaktest.AfterTest(t)()
	// same values in two chunks with distinct dictionary identifiers must
	// dedup independently; a plain chunk in between stays untouched
	a := newTestChunk(0, vector.NewInt64([]int64{5, 3, 5, 3, 3}, nil), MaxFragmentRows)
	plain := &ColumnChunk{NumRows: 5, Vec: vector.NewInt64([]int64{5, 3, 5, 3, 3}, nil)}
	b := newTestChunk(1, vector.NewInt64([]int64{5, 3, 5, 3, 3}, nil), MaxFragmentRows)

	scratch := make([]uint32, ScratchSize(2))
	require.NoError(t, BuildDictionaries([]*ColumnChunk{a, plain, b}, scratch, nil))

	for _, chunk := range []*ColumnChunk{a, b} {
		require.Equal(t, 2, chunk.TotalDictEntries)
		require.Equal(t, []uint32{0, 1}, chunk.DictData())
		require.Equal(t, []uint32{0, 1, 0, 1, 1}, chunk.DictIndex())
	}
	require.Equal(t, 0, plain.TotalDictEntries)
	require.Nil(t, plain.DictIndex())
}

func TestBuildReusesScratchAcrossInvocations(t *testing.T) {
	// the driver re-zeroes scratch, so back-to-back invocations over the
	// same buffer must not see each other's buckets
	scratch := make([]uint32, ScratchSize(1))

	a := newTestChunk(0, vector.NewInt64([]int64{10, 20, 30}, nil), MaxFragmentRows)
	require.NoError(t, BuildDictionaries([]*ColumnChunk{a}, scratch, nil))

	b := newTestChunk(0, vector.NewInt64([]int64{10, 10, 40}, nil), MaxFragmentRows)
	require.NoError(t, BuildDictionaries([]*ColumnChunk{b}, scratch, nil))

	require.Equal(t, 2, b.TotalDictEntries)
	require.Equal(t, []uint32{0, 2}, b.DictData())
	require.Equal(t, []uint32{0, 0, 1}, b.DictIndex())
}

func TestBuildEmptyChunkList(t *testing.T) {
	require.NoError(t, BuildDictionaries(nil, nil, nil))
}
