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
	"github.com/quartzdb/quartz/pkg/container/hashtable"
)

// The shared scratch buffer holds one bucket table per dictionary
// identifier.  The caller sizes and owns it; the driver zeroes it once per
// invocation and slices it per DictID, so regions never alias between
// chunks using different identifiers.

// ScratchSize returns the number of scratch slots needed for numDicts
// dictionary identifiers.  Zero is a valid size when no chunk in the batch
// requests dictionary encoding.
func ScratchSize(numDicts int) int {
	return numDicts * hashtable.BucketCount
}

// ScratchBytes returns the scratch footprint in bytes.
func ScratchBytes(numDicts int) int64 {
	return int64(ScratchSize(numDicts)) * hashtable.BucketEntrySize
}

func dictScratch(scratch []uint32, dictID int) []uint32 {
	beg := dictID * hashtable.BucketCount
	return scratch[beg : beg+hashtable.BucketCount]
}

func zeroScratch(scratch []uint32) {
	for i := range scratch {
		scratch[i] = 0
	}
}
