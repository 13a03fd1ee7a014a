/*
 * Copyright 2026 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crc

import (
	"encoding/binary"
	"hash"
	"sync"
	"unsafe"

	"github.com/fcm-sketch/hashcalc/y"
)

// Castagnoli is the CRC-32C polynomial in reversed (LSB-first) form.
const Castagnoli = 0x82F63B78

// Size of a CRC-32 checksum in bytes.
const Size = 4

type slicing8Table [8][256]uint32

// lazyTable holds a slicing-by-8 table built on first use. Once get has
// returned, the table is never written again.
type lazyTable struct {
	once sync.Once
	tab  *slicing8Table
}

func (l *lazyTable) get() *slicing8Table {
	l.once.Do(func() {
		l.tab = makeCastagnoliTable()
		y.NumTableBuildsAdd(1)
	})
	return l.tab
}

var castagnoliTable8 = new(lazyTable)

// makeCastagnoliTable builds the slicing-by-8 table. Row 0 is the classic
// byte-at-a-time table; row k advances row k-1 by one more zero byte.
func makeCastagnoliTable() *slicing8Table {
	t := new(slicing8Table)
	for n := 0; n < 256; n++ {
		crc := uint32(n)
		for i := 0; i < 8; i++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Castagnoli
			} else {
				crc >>= 1
			}
		}
		t[0][n] = crc
	}
	for n := 0; n < 256; n++ {
		crc := t[0][n]
		for k := 1; k < 8; k++ {
			crc = t[0][crc&0xff] ^ (crc >> 8)
			t[k][n] = crc
		}
	}
	// Only the last of the eight shifts of 0x80 drops a one bit, leaving the bare polynomial.
	y.AssertTruef(t[0][0x80] == Castagnoli, "crc32c table: t[0][0x80] = %#x", t[0][0x80])
	return t
}

// UpdateCastagnoli returns the CRC-32C of data appended to the data that
// produced crc. Pass 0 to start a new checksum.
func UpdateCastagnoli(crc uint32, data []byte) uint32 {
	t := castagnoliTable8.get()

	crc = ^crc
	for len(data) > 0 && uintptr(unsafe.Pointer(&data[0]))&7 != 0 {
		crc = t[0][byte(crc)^data[0]] ^ (crc >> 8)
		data = data[1:]
	}
	for len(data) >= 8 {
		// The fold is defined on the little-endian reading of the word,
		// whatever the host byte order is.
		w := uint64(crc) ^ binary.LittleEndian.Uint64(data)
		crc = t[7][byte(w)] ^
			t[6][byte(w>>8)] ^
			t[5][byte(w>>16)] ^
			t[4][byte(w>>24)] ^
			t[3][byte(w>>32)] ^
			t[2][byte(w>>40)] ^
			t[1][byte(w>>48)] ^
			t[0][byte(w>>56)]
		data = data[8:]
	}
	for _, b := range data {
		crc = t[0][byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// ChecksumCastagnoli returns the CRC-32C checksum of data.
func ChecksumCastagnoli(data []byte) uint32 {
	return UpdateCastagnoli(0, data)
}

// castagnoliDigest represents the partial evaluation of a CRC-32C checksum.
type castagnoliDigest struct {
	crc uint32
}

// NewCastagnoli returns a hash.Hash32 computing CRC-32C with the software
// slicing-by-8 implementation. Its Sum method lays the value out in
// big-endian byte order.
func NewCastagnoli() hash.Hash32 { return &castagnoliDigest{} }

func (d *castagnoliDigest) Size() int { return Size }

func (d *castagnoliDigest) BlockSize() int { return 1 }

func (d *castagnoliDigest) Reset() { d.crc = 0 }

func (d *castagnoliDigest) Write(p []byte) (n int, err error) {
	d.crc = UpdateCastagnoli(d.crc, p)
	return len(p), nil
}

func (d *castagnoliDigest) Sum32() uint32 { return d.crc }

func (d *castagnoliDigest) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.crc)
}
