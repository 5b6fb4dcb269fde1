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

package hashtable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketTableClaim(t *testing.T) {
	tbl := NewBucketTable(make([]uint32, BucketCount))

	_, ok := tbl.Head(42)
	require.False(t, ok)

	row, claimed := tbl.Claim(42, 7)
	require.True(t, claimed)
	require.Equal(t, uint32(7), row)

	// second claim loses and observes the occupant
	row, claimed = tbl.Claim(42, 9)
	require.False(t, claimed)
	require.Equal(t, uint32(7), row)

	row, ok = tbl.Head(42)
	require.True(t, ok)
	require.Equal(t, uint32(7), row)

	tbl.Reset()
	_, ok = tbl.Head(42)
	require.False(t, ok)
}

func TestBucketTableWrongSize(t *testing.T) {
	require.Panics(t, func() {
		NewBucketTable(make([]uint32, 16))
	})
}

func TestBucketTableConcurrentClaim(t *testing.T) {
	tbl := NewBucketTable(make([]uint32, BucketCount))

	const claimers = 32
	winners := make([]bool, claimers)
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, winners[i] = tbl.Claim(100, uint32(i))
		}(i)
	}
	wg.Wait()

	won := 0
	for _, w := range winners {
		if w {
			won++
		}
	}
	require.Equal(t, 1, won)

	occupant, ok := tbl.Head(100)
	require.True(t, ok)
	require.Less(t, occupant, uint32(claimers))
}
