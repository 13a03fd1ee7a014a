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

// Update feeds data into the MSB-first register crc using the polynomial of
// variant v. The register is kept as is between calls, so a computation can be
// resumed by passing the previous result. Start with v.Params().Init.
// It panics if v is not valid.
func Update(v Variant, crc uint32, data []byte) uint32 {
	return update(v.Params().Poly, crc, data)
}

func update(poly, crc uint32, data []byte) uint32 {
	for _, b := range data {
		// xor next byte into the top 8 bits of the register
		crc ^= uint32(b) << 24
		for i := 0; i < 8; i++ {
			msb := crc >> 31
			crc <<= 1
			crc ^= -msb & poly
		}
	}
	return crc
}

// Checksum returns the CRC of data for variant v. Empty data yields the
// variant's initial value. It panics if v is not valid.
func Checksum(v Variant, data []byte) uint32 {
	p := v.Params()
	return update(p.Poly, p.Init, data)
}

// ChecksumMPEG2 returns the CRC-32/MPEG-2 checksum of data.
func ChecksumMPEG2(data []byte) uint32 { return Checksum(MPEG2, data) }

// ChecksumXFER returns the CRC-32/XFER checksum of data.
func ChecksumXFER(data []byte) uint32 { return Checksum(XFER, data) }

// ChecksumAIXM returns the CRC-32/AIXM checksum of data.
func ChecksumAIXM(data []byte) uint32 { return Checksum(AIXM, data) }
