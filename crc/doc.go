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

/*
Package crc implements the 32-bit CRCs used to place flow keys in FCM sketch
registers.

Three families are provided:

  - Non-reflected, bit-serial CRCs (MSB first, no final XOR): CRC-32/MPEG-2,
    CRC-32/XFER and CRC-32/AIXM. See Checksum and Update.
  - Software CRC-32C (Castagnoli) using slicing-by-8. The 8x256 table is
    built once per process on first use. See UpdateCastagnoli.
  - Standard CRC-32 (IEEE), delegated to github.com/klauspost/crc32 and used
    as the cross-check reference.

All functions are safe for concurrent use.
*/
package crc
