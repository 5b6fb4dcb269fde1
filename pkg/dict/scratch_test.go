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

	"github.com/stretchr/testify/require"

	"github.com/quartzdb/quartz/pkg/container/hashtable"
)

func TestScratchSize(t *testing.T) {
	require.Equal(t, 0, ScratchSize(0))
	require.Equal(t, hashtable.BucketCount, ScratchSize(1))
	require.Equal(t, 3*hashtable.BucketCount, ScratchSize(3))
	require.Equal(t, int64(hashtable.BucketCount*hashtable.BucketEntrySize), ScratchBytes(1))
}

func TestDictScratchSlicing(t *testing.T) {
	scratch := make([]uint32, ScratchSize(2))
	a := dictScratch(scratch, 0)
	b := dictScratch(scratch, 1)
	require.Equal(t, hashtable.BucketCount, len(a))
	require.Equal(t, hashtable.BucketCount, len(b))

	// regions must not alias
	a[0] = 7
	require.Equal(t, uint32(0), b[0])
	b[hashtable.BucketCount-1] = 9
	require.Equal(t, uint32(7), scratch[0])
	require.Equal(t, uint32(9), scratch[len(scratch)-1])
}

func TestZeroScratch(t *testing.T) {
	scratch := []uint32{1, 2, 3}
	zeroScratch(scratch)
	require.Equal(t, []uint32{0, 0, 0}, scratch)
}
