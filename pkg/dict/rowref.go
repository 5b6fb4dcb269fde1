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

// rowRef is the transient value held in a dictIndex slot while the chunk is
// being deduplicated: either the row's own number (the row is its group's
// representative) or a tagged pointer to another row that must be resolved
// further.  The compactor later overwrites slots with untagged dense
// positions, so an untagged value read during chain resolution is final.
type rowRef uint32

const ptrTag = 1 << 31

func repRef(row uint32) rowRef {
	return rowRef(row)
}

func ptrRef(row uint32) rowRef {
	return rowRef(row | ptrTag)
}

func (r rowRef) isPtr() bool {
	return uint32(r)&ptrTag != 0
}

func (r rowRef) row() uint32 {
	return uint32(r) &^ ptrTag
}
