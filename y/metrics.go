/*
 * Copyright 2026 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package y

import (
	"expvar"
)

var (
	// bytesHashed has cumulative number of bytes checksummed, keyed by algorithm.
	bytesHashed *expvar.Map
	// numChecksums has cumulative number of checksum calls, keyed by algorithm.
	numChecksums *expvar.Map
	// numMismatches is the number of failed verifications.
	numMismatches *expvar.Int
	// numTableBuilds counts CRC-32C slicing table constructions. Anything but 1 is a bug.
	numTableBuilds *expvar.Int
)

// These variables are global and have cumulative values for the whole process.
func init() {
	bytesHashed = expvar.NewMap("hashcalc_bytes_hashed_total")
	numChecksums = expvar.NewMap("hashcalc_checksums_total")
	numMismatches = expvar.NewInt("hashcalc_checksum_mismatches_total")
	numTableBuilds = expvar.NewInt("hashcalc_crc32c_table_builds_total")
}

// NumChecksumsAdd records one checksum of n bytes computed with algo.
func NumChecksumsAdd(algo string, n int) {
	numChecksums.Add(algo, 1)
	bytesHashed.Add(algo, int64(n))
}

// NumChecksums returns the number of checksums recorded for algo.
func NumChecksums(algo string) int64 {
	return mapValue(numChecksums, algo)
}

// BytesHashed returns the number of bytes recorded for algo.
func BytesHashed(algo string) int64 {
	return mapValue(bytesHashed, algo)
}

func NumMismatchesAdd(val int64) {
	numMismatches.Add(val)
}

func NumMismatches() int64 {
	return numMismatches.Value()
}

func NumTableBuildsAdd(val int64) {
	numTableBuilds.Add(val)
}

func NumTableBuilds() int64 {
	return numTableBuilds.Value()
}

func mapValue(m *expvar.Map, key string) int64 {
	v, ok := m.Get(key).(*expvar.Int)
	if !ok {
		return 0
	}
	return v.Value()
}
