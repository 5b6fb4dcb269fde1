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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quartzdb/quartz/pkg/container/nulls"
	"github.com/quartzdb/quartz/pkg/container/types"
)

func TestNew(t *testing.T) {
	for _, oid := range []types.T{
		types.T_int32, types.T_int64, types.T_float32,
		types.T_float64, types.T_int96, types.T_varchar,
	} {
		v := New(types.New(oid))
		require.Equal(t, oid, v.Typ.Oid)
		require.Equal(t, 0, v.Length())
	}
}

func TestLengthAndNulls(t *testing.T) {
	v := NewInt64([]int64{10, 20, 30}, nulls.Build(1))
	require.Equal(t, 3, v.Length())
	require.False(t, v.IsNull(0))
	require.True(t, v.IsNull(1))

	s := NewBytes([][]byte{[]byte("ab"), nil, []byte("ab")}, nil)
	require.Equal(t, 3, s.Length())
	require.Equal(t, []byte("ab"), s.Col.(*types.Bytes).Get(2))
}
