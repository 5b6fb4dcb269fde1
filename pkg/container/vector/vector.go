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

package vector

import (
	"github.com/quartzdb/quartz/pkg/container/nulls"
	"github.com/quartzdb/quartz/pkg/container/types"
)

// Vector is a typed column of values.  Col holds the typed payload slice
// ([]int32, []int64, []float32, []float64, []types.Int96) for fixed-width
// types, or *types.Bytes for variable-length types.
type Vector struct {
	Typ types.Type
	Col any
	Nsp *nulls.Nulls
}

func New(typ types.Type) *Vector {
	v := &Vector{Typ: typ, Nsp: &nulls.Nulls{}}
	switch typ.Oid {
	case types.T_int32:
		v.Col = []int32(nil)
	case types.T_int64:
		v.Col = []int64(nil)
	case types.T_float32:
		v.Col = []float32(nil)
	case types.T_float64:
		v.Col = []float64(nil)
	case types.T_int96:
		v.Col = []types.Int96(nil)
	case types.T_varchar:
		v.Col = &types.Bytes{}
	}
	return v
}

func NewInt32(vs []int32, nsp *nulls.Nulls) *Vector {
	return &Vector{Typ: types.New(types.T_int32), Col: vs, Nsp: nsp}
}

func NewInt64(vs []int64, nsp *nulls.Nulls) *Vector {
	return &Vector{Typ: types.New(types.T_int64), Col: vs, Nsp: nsp}
}

func NewFloat32(vs []float32, nsp *nulls.Nulls) *Vector {
	return &Vector{Typ: types.New(types.T_float32), Col: vs, Nsp: nsp}
}

func NewFloat64(vs []float64, nsp *nulls.Nulls) *Vector {
	return &Vector{Typ: types.New(types.T_float64), Col: vs, Nsp: nsp}
}

func NewInt96(vs []types.Int96, nsp *nulls.Nulls) *Vector {
	return &Vector{Typ: types.New(types.T_int96), Col: vs, Nsp: nsp}
}

// NewBytes builds a varchar vector from discrete values.
func NewBytes(vs [][]byte, nsp *nulls.Nulls) *Vector {
	col := &types.Bytes{}
	for _, v := range vs {
		col.Append(v)
	}
	return &Vector{Typ: types.New(types.T_varchar), Col: col, Nsp: nsp}
}

// Length returns the row count of the vector.
func (v *Vector) Length() int {
	switch col := v.Col.(type) {
	case []int32:
		return len(col)
	case []int64:
		return len(col)
	case []float32:
		return len(col)
	case []float64:
		return len(col)
	case []types.Int96:
		return len(col)
	case *types.Bytes:
		return col.Len()
	}
	return 0
}

// IsNull reports whether the row is null.
func (v *Vector) IsNull(row uint32) bool {
	return nulls.Contains(v.Nsp, row)
}
