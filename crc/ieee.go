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
	"github.com/klauspost/crc32"
)

// ChecksumIEEE returns the standard reflected CRC-32 of data, as computed by
// zlib's crc32().
func ChecksumIEEE(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// UpdateIEEE returns the CRC-32 of data appended to the data that produced crc.
func UpdateIEEE(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32.IEEETable, data)
}
