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

// reconcile repairs the round just classified so that the representative of
// every equal-value group is the lowest row number in it, regardless of
// which row's bucket claim landed first.  Two phases with a barrier
// between:
//
//  1. every duplicate whose representative has a higher row number resolves
//     the representative's own chain to its root and atomically lowers the
//     root's recorded winner to the minimum of itself and this row;
//  2. once the minimum has stabilized, the row holding it becomes the new
//     representative and the old root is rewritten to point at it.
//
// One round of this suffices because rows ascend across rounds: a
// representative can only lose to a lower row raced in the same round.
func (s *chunkState) reconcile(round []uint32) error {
	roots := make([]uint32, len(round))

	err := s.b.parallelFor(len(round), func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			row := round[i]
			roots[i] = NullDictIndex
			ref := rowRef(atomic.LoadUint32(&s.dictIndex[row]))
			if !ref.isPtr() || ref.row() < row {
				continue
			}
			root, err := s.resolveRoot(ref.row())
			if err != nil {
				return err
			}
			roots[i] = root
			atomicMinUint32(&s.dictIndex[root], row)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.b.parallelFor(len(round), func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			row := round[i]
			root := roots[i]
			if root == NullDictIndex {
				continue
			}
			// The minimum is stable after the barrier; only the winning
			// row rewrites, so the root slot has a single writer here.
			if atomic.LoadUint32(&s.dictIndex[root]) == row {
				atomic.StoreUint32(&s.dictIndex[row], uint32(repRef(row)))
				atomic.StoreUint32(&s.dictIndex[root], uint32(ptrRef(row)))
			}
		}
		return nil
	})
}

// resolveRoot follows the representative chain from row to the row that is
// currently its own representative.
func (s *chunkState) resolveRoot(row uint32) (uint32, error) {
	for hops := 0; ; hops++ {
		if hops > s.b.maxChainHops {
			return 0, moerr.NewInvalidStateNoCtxf(
				"dictionary %d: representative chain exceeded %d hops at row %d",
				s.chunk.DictID, s.b.maxChainHops, row)
		}
		ref := rowRef(atomic.LoadUint32(&s.dictIndex[row]))
		if !ref.isPtr() {
			return row, nil
		}
		row = ref.row()
	}
}

func atomicMinUint32(addr *uint32, v uint32) {
	for {
		cur := atomic.LoadUint32(addr)
		if v >= cur || atomic.CompareAndSwapUint32(addr, cur, v) {
			return
		}
	}
}
