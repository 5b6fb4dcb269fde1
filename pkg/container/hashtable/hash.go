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
	"encoding/binary"
	"math/bits"
)

// Dictionary bucket tables are indexed by a 16-bit hash.  Fixed-width
// payloads use cheap add/xor folding; byte sequences run a word-at-a-time
// rotate-and-mix loop.  All functions are seedless so that repeated runs
// over the same input produce the same table layout.

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m3 = 0x8ebc6af09c88c6e3
)

// Int32Hash16 folds a 32-bit word into 16 bits.
func Int32Hash16(x uint32) uint16 {
	return uint16(x + (x >> 16))
}

// Int64Hash16 folds a 64-bit word into 16 bits.
func Int64Hash16(x uint64) uint16 {
	w := uint32(x) + uint32(x>>32)
	return uint16(w + (w >> 16))
}

// Int96Hash16 folds a 12-byte payload into 16 bits.
func Int96Hash16(b [12]byte) uint16 {
	w := binary.LittleEndian.Uint32(b[0:4]) +
		binary.LittleEndian.Uint32(b[4:8]) +
		binary.LittleEndian.Uint32(b[8:12])
	return uint16(w + (w >> 16))
}

// BytesHash16 hashes a byte sequence of any length into 16 bits, consuming
// the run in 8-byte words with a masked partial trailing word.
func BytesHash16(data []byte) uint16 {
	h := m1 ^ uint64(len(data))
	for len(data) >= 8 {
		h = bits.RotateLeft64(h, 31) ^ mix(binary.LittleEndian.Uint64(data), m2)
		data = data[8:]
	}
	if len(data) > 0 {
		var w uint64
		for i := len(data) - 1; i >= 0; i-- {
			w = w<<8 | uint64(data[i])
		}
		h = bits.RotateLeft64(h, 31) ^ mix(w, m3)
	}
	h ^= h >> 32
	h ^= h >> 16
	return uint16(h)
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
