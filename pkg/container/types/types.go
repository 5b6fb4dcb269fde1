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

package types

import (
	"fmt"
)

// T is the physical type code of a column.
type T uint8

const (
	// fixed-width numerics
	T_int32   T = 1
	T_int64   T = 2
	T_float32 T = 3
	T_float64 T = 4
	// T_int96 is a 12-byte fixed payload (legacy timestamp layout).
	T_int96 T = 5

	// variable-length byte sequences
	T_varchar T = 10
)

// Type describes a column's physical type.
type Type struct {
	Oid T
	// Size is the fixed payload width in bytes, or VarlenSize for
	// variable-length types.
	Size int32
}

// VarlenSize marks variable-length payloads in Type.Size.
const VarlenSize int32 = -1

// Int96 is a 12-byte fixed payload.
type Int96 [12]byte

func New(oid T) Type {
	return Type{Oid: oid, Size: oid.FixedSize()}
}

// FixedSize returns the fixed payload width of t in bytes, or VarlenSize.
func (t T) FixedSize() int32 {
	switch t {
	case T_int32, T_float32:
		return 4
	case T_int64, T_float64:
		return 8
	case T_int96:
		return 12
	case T_varchar:
		return VarlenSize
	}
	panic(fmt.Sprintf("unknown type %d", t))
}

func (t T) IsVarlen() bool {
	return t == T_varchar
}

func (t T) String() string {
	switch t {
	case T_int32:
		return "INT32"
	case T_int64:
		return "INT64"
	case T_float32:
		return "FLOAT32"
	case T_float64:
		return "FLOAT64"
	case T_int96:
		return "INT96"
	case T_varchar:
		return "VARCHAR"
	}
	return fmt.Sprintf("unknown type %d", uint8(t))
}

// Bytes holds a column of variable-length values in a single backing
// array, addressed by per-row offset and length.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

// Get returns the i-th value.  The returned slice aliases Data.
func (a *Bytes) Get(i int64) []byte {
	return a.Data[a.Offsets[i] : a.Offsets[i]+a.Lengths[i]]
}

// Append adds v as the next value.
func (a *Bytes) Append(v []byte) {
	a.Offsets = append(a.Offsets, uint32(len(a.Data)))
	a.Lengths = append(a.Lengths, uint32(len(v)))
	a.Data = append(a.Data, v...)
}

// Len returns the number of values.
func (a *Bytes) Len() int {
	return len(a.Offsets)
}
