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

// compactIndices is the second full pass over every row of the chunk, not
// just fragment windows.  Rows are processed in fixed-size batches; within
// a batch each worker counts the representatives in its range, an exclusive
// prefix sum over those counts (plus the running carry from earlier
// batches) yields each representative's dense dictionary position, and a
// final phase writes positions: representatives fill dictData and their own
// dictIndex slot, duplicates resolve the representative chain to the
// position it was just assigned.  Representatives hold the lowest row of
// their group, so a duplicate's chain always terminates in a slot written
// no later than its own batch's representative phase.
func (s *chunkState) compactIndices() error {
	numRows := int(s.chunk.NumRows)
	carry := 0

	for beg := 0; beg < numRows; beg += s.b.rowsPerBatch {
		end := beg + s.b.rowsPerBatch
		if end > numRows {
			end = numRows
		}

		for w := range s.counts {
			s.counts[w] = 0
		}
		err := s.b.parallelFor(end-beg, func(w, lo, hi int) error {
			n := 0
			for i := lo; i < hi; i++ {
				if s.isRepresentative(uint32(beg + i)) {
					n++
				}
			}
			s.counts[w] = uint32(n)
			return nil
		})
		if err != nil {
			return err
		}

		// exclusive prefix sum across the worker ranges
		running := carry
		for w := range s.offsets {
			s.offsets[w] = running
			running += int(s.counts[w])
		}

		// representatives and uncovered rows first; duplicates need the
		// representative positions to be in place before they resolve.
		err = s.b.parallelFor(end-beg, func(w, lo, hi int) error {
			pos := s.offsets[w]
			for i := lo; i < hi; i++ {
				row := uint32(beg + i)
				if !s.rowCovered(row) {
					atomic.StoreUint32(&s.dictIndex[row], NullDictIndex)
					continue
				}
				if s.isRepresentative(row) {
					s.dictData[pos] = row
					atomic.StoreUint32(&s.dictIndex[row], uint32(pos))
					pos++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		err = s.b.parallelFor(end-beg, func(_, lo, hi int) error {
			for i := lo; i < hi; i++ {
				row := uint32(beg + i)
				ref := rowRef(atomic.LoadUint32(&s.dictIndex[row]))
				if !s.rowCovered(row) || !ref.isPtr() {
					continue
				}
				pos, err := s.resolvePosition(ref.row())
				if err != nil {
					return err
				}
				atomic.StoreUint32(&s.dictIndex[row], pos)
			}
			return nil
		})
		if err != nil {
			return err
		}

		carry = running
	}

	if carry != s.totalEntries {
		return moerr.NewInvalidStateNoCtxf(
			"dictionary %d: compacted %d entries, accounted %d",
			s.chunk.DictID, carry, s.totalEntries)
	}
	return nil
}

// rowCovered reports whether row participates in the dictionary: inside the
// included-fragment range and non-null.
func (s *chunkState) rowCovered(row uint32) bool {
	return row < s.coveredRows && !s.vec.IsNull(row)
}

// isRepresentative reports whether row is its value group's chosen unique
// representative.
func (s *chunkState) isRepresentative(row uint32) bool {
	return s.rowCovered(row) &&
		rowRef(atomic.LoadUint32(&s.dictIndex[row])) == repRef(row)
}

// resolvePosition follows the representative chain from row until it reads
// an untagged value: the dense position already assigned to the group's
// representative.
func (s *chunkState) resolvePosition(row uint32) (uint32, error) {
	for hops := 0; ; hops++ {
		if hops > s.b.maxChainHops {
			return 0, moerr.NewInvalidStateNoCtxf(
				"dictionary %d: representative chain exceeded %d hops at row %d",
				s.chunk.DictID, s.b.maxChainHops, row)
		}
		v := atomic.LoadUint32(&s.dictIndex[row])
		ref := rowRef(v)
		if !ref.isPtr() {
			return v, nil
		}
		row = ref.row()
	}
}
