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
	"bytes"
	"math"

	"github.com/quartzdb/quartz/pkg/container/hashtable"
	"github.com/quartzdb/quartz/pkg/container/types"
	"github.com/quartzdb/quartz/pkg/container/vector"
)

// hashRow computes the 16-bit bucket hash of a row's value.
func hashRow(vec *vector.Vector, row uint32) uint16 {
	switch col := vec.Col.(type) {
	case []int32:
		return hashtable.Int32Hash16(uint32(col[row]))
	case []int64:
		return hashtable.Int64Hash16(uint64(col[row]))
	case []float32:
		return hashtable.Int32Hash16(math.Float32bits(col[row]))
	case []float64:
		return hashtable.Int64Hash16(math.Float64bits(col[row]))
	case []types.Int96:
		return hashtable.Int96Hash16(col[row])
	case *types.Bytes:
		return hashtable.BytesHash16(col.Get(int64(row)))
	}
	panic("hashRow: unsupported column type")
}

// rowsEqual compares two rows' values exactly: bitwise for fixed-width
// payloads, full byte-sequence comparison for strings.
func rowsEqual(vec *vector.Vector, a, b uint32) bool {
	switch col := vec.Col.(type) {
	case []int32:
		return col[a] == col[b]
	case []int64:
		return col[a] == col[b]
	case []float32:
		return math.Float32bits(col[a]) == math.Float32bits(col[b])
	case []float64:
		return math.Float64bits(col[a]) == math.Float64bits(col[b])
	case []types.Int96:
		return col[a] == col[b]
	case *types.Bytes:
		return bytes.Equal(col.Get(int64(a)), col.Get(int64(b)))
	}
	panic("rowsEqual: unsupported column type")
}

// entrySize returns the byte cost of admitting row's value into the
// dictionary: the fixed payload width for numeric types, or the length
// prefix plus payload bytes for strings.
func entrySize(vec *vector.Vector, row uint32) int64 {
	if vec.Typ.Oid.IsVarlen() {
		col := vec.Col.(*types.Bytes)
		return 4 + int64(col.Lengths[row])
	}
	return int64(vec.Typ.Size)
}
