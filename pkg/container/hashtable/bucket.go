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
	"sync/atomic"
)

const (
	// BucketBits is the hash width used to index a dictionary bucket table.
	BucketBits = 16
	// BucketCount is the number of head slots per dictionary.
	BucketCount = 1 << BucketBits
	// BucketEntrySize is the width of one head slot in bytes.
	BucketEntrySize = 4
)

// BucketTable is one dictionary's array of chain-head slots over a
// caller-owned scratch region.  A slot is either empty (0) or holds the
// claiming row number plus one.  All mutation goes through compare-and-swap;
// the table is safe for concurrent claimers and holds no lock.
type BucketTable struct {
	slots []uint32
}

// NewBucketTable wraps a scratch region of exactly BucketCount slots.
// The caller is responsible for zeroing the region before first use.
func NewBucketTable(slots []uint32) BucketTable {
	if len(slots) != BucketCount {
		panic("bucket table region must hold exactly BucketCount slots")
	}
	return BucketTable{slots: slots}
}

// Claim attempts to claim the head slot for hash h with row.  On success it
// returns (row, true).  If the slot was already occupied it returns the
// occupant's row number and false.
func (t BucketTable) Claim(h uint16, row uint32) (uint32, bool) {
	if atomic.CompareAndSwapUint32(&t.slots[h], 0, row+1) {
		return row, true
	}
	return atomic.LoadUint32(&t.slots[h]) - 1, false
}

// Head returns the occupant row of the head slot for hash h, or false if
// the slot is empty.
func (t BucketTable) Head(h uint16) (uint32, bool) {
	v := atomic.LoadUint32(&t.slots[h])
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}

// Reset empties every slot.  Only safe with no concurrent claimers.
func (t BucketTable) Reset() {
	for i := range t.slots {
		t.slots[i] = 0
	}
}
