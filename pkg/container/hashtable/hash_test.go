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

package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32Hash16(t *testing.T) {
	// small values fold to themselves
	require.Equal(t, uint16(10), Int32Hash16(10))
	require.Equal(t, uint16(20), Int32Hash16(20))
	// the high half participates
	require.NotEqual(t, Int32Hash16(1), Int32Hash16(1|1<<16))
}

func TestInt64Hash16(t *testing.T) {
	require.Equal(t, uint16(5), Int64Hash16(5))
	require.Equal(t, Int32Hash16(7), Int64Hash16(7))
	require.NotEqual(t, Int64Hash16(1), Int64Hash16(1|1<<32))
}

func TestInt96Hash16(t *testing.T) {
	var a, b [12]byte
	b[11] = 1
	require.Equal(t, Int96Hash16(a), Int96Hash16(a))
	require.NotEqual(t, Int96Hash16(a), Int96Hash16(b))
}

func TestBytesHash16(t *testing.T) {
	// value equality, not backing-array identity
	x := []byte("the quick brown fox jumps over the lazy dog")
	y := append(make([]byte, 0, 128), x...)
	require.Equal(t, BytesHash16(x), BytesHash16(y))

	// partial trailing word contributes
	require.NotEqual(t, BytesHash16([]byte("abcdefgh")), BytesHash16([]byte("abcdefghi")))
	require.NotEqual(t, BytesHash16([]byte("a")), BytesHash16([]byte("b")))

	// empty input is well defined
	require.Equal(t, BytesHash16(nil), BytesHash16([]byte{}))
}

func TestBytesHash16Spread(t *testing.T) {
	seen := make(map[uint16]struct{})
	for i := 0; i < 256; i++ {
		seen[BytesHash16([]byte(fmt.Sprintf("column-value-%d", i)))] = struct{}{}
	}
	// a weak fold would collapse these; require a reasonable spread
	require.Greater(t, len(seen), 200)
}
