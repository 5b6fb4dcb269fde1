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
	"sync/atomic"

	"github.com/quartzdb/quartz/pkg/common/moerr"
)

// dedupFragment classifies every candidate row of frag as unique or
// duplicate, processing candidates in row-ascending rounds.  Each round is
// a hashing/insert phase, a barrier, an order-reconciliation phase, and a
// reduction of the round's verified unique count and byte size.  It returns
// the fragment's verified totals.
func (s *chunkState) dedupFragment(frag *Fragment) (uint32, int64, error) {
	cand, err := s.loadFragment(frag)
	if err != nil || len(cand) == 0 {
		return 0, 0, err
	}

	var entries uint32
	var size int64
	for beg := 0; beg < len(cand); beg += s.b.rowsPerBatch {
		end := beg + s.b.rowsPerBatch
		if end > len(cand) {
			end = len(cand)
		}
		round := cand[beg:end]

		for w := range s.counts {
			s.counts[w], s.sizes[w] = 0, 0
		}
		err := s.b.parallelFor(len(round), func(w, lo, hi int) error {
			for i := lo; i < hi; i++ {
				row := round[i]
				unique, err := s.classify(row)
				if err != nil {
					return err
				}
				if unique {
					s.counts[w]++
					s.sizes[w] += entrySize(s.vec, row)
				}
			}
			return nil
		})
		if err != nil {
			return 0, 0, err
		}

		if err := s.reconcile(round); err != nil {
			return 0, 0, err
		}

		for w := range s.counts {
			entries += s.counts[w]
			size += s.sizes[w]
		}
	}
	return entries, size, nil
}

// classify hashes the row's value and walks the bucket chain until it
// either claims an empty slot (the row is provisionally unique) or meets an
// occupant holding an equal value (the row is a duplicate of it).  The walk
// is bounded: running past every row of the chunk means the scratch table
// was not zeroed or aliases another dictionary.
func (s *chunkState) classify(row uint32) (bool, error) {
	h := hashRow(s.vec, row)
	occupant, claimed := s.buckets.Claim(h, row)
	for walk := uint32(0); !claimed; walk++ {
		if walk > s.chunk.NumRows {
			return false, moerr.NewInvalidStateNoCtxf(
				"dictionary %d: unbounded bucket chain at hash %#x; scratch not zeroed or aliased",
				s.chunk.DictID, h)
		}
		if rowsEqual(s.vec, row, occupant) {
			atomic.StoreUint32(&s.dictIndex[row], uint32(ptrRef(occupant)))
			return false, nil
		}
		occupant, claimed = s.claimChain(occupant, row)
	}
	atomic.StoreUint32(&s.dictIndex[row], uint32(repRef(row)))
	return true, nil
}

// claimChain attempts to append row after the occupant at position at,
// reusing the occupant's candidate-array cell as the chain link.  On a lost
// race it returns the link's current target so the caller keeps walking.
func (s *chunkState) claimChain(at, row uint32) (uint32, bool) {
	if atomic.CompareAndSwapUint32(&s.dictData[at], 0, row+1) {
		return row, true
	}
	return atomic.LoadUint32(&s.dictData[at]) - 1, false
}
