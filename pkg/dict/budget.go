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

// commitFragment applies the budget check to a fragment whose verified
// unique count and byte size are known.  It returns false when admitting
// the fragment would exceed the entry cap, or would exceed the size cap on
// a chunk that already accumulated size; the fragment and everything after
// it are then excluded and the serializer falls back to plain encoding for
// those rows.  Returning false is normal termination, not an error.
func (s *chunkState) commitFragment(frag *Fragment, entries uint32, size int64) bool {
	if uint64(s.totalEntries)+uint64(entries) > MaxDictEntries {
		return false
	}
	if s.totalSize+size > MaxDictSize && s.totalSize != 0 {
		return false
	}

	// shrink the planner's preliminary estimates to verified values
	frag.NumDictVals = entries
	frag.DictDataSize = size

	s.totalEntries += int(entries)
	s.totalSize += size
	s.coveredRows += frag.NumRows
	s.numFragments++
	return true
}
