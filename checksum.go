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

package hashcalc

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/fcm-sketch/hashcalc/crc"
	"github.com/fcm-sketch/hashcalc/y"
)

// Algorithm identifies a checksum function.
type Algorithm uint8

const (
	// CRC32 is the standard reflected CRC-32 (IEEE), as computed by zlib.
	CRC32 Algorithm = iota
	// CRC32MPEG2 is the bit-serial CRC-32/MPEG-2.
	CRC32MPEG2
	// CRC32XFER is the bit-serial CRC-32/XFER.
	CRC32XFER
	// CRC32AIXM is the bit-serial CRC-32/AIXM.
	CRC32AIXM
	// CRC32C is the software slicing-by-8 CRC-32C.
	CRC32C
	// XXHash64 is 64-bit xxHash. It is not a CRC, but is handy as an
	// independent sketch hash.
	XXHash64

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	CRC32:      "crc32",
	CRC32MPEG2: "crc32-mpeg2",
	CRC32XFER:  "crc32-xfer",
	CRC32AIXM:  "crc32-aixm",
	CRC32C:     "crc32c",
	XXHash64:   "xxhash64",
}

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	algos := make([]Algorithm, 0, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		algos = append(algos, a)
	}
	return algos
}

func (a Algorithm) String() string {
	if a >= numAlgorithms {
		return "unknown"
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves an algorithm by its String form. Names of the
// bit-serial variants accepted by crc.ParseVariant are accepted as well.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == n {
			return Algorithm(a), nil
		}
	}
	switch n {
	case "crc-32", "ieee":
		return CRC32, nil
	case "crc-32c", "castagnoli":
		return CRC32C, nil
	}
	if v, err := crc.ParseVariant(n); err == nil {
		return fromVariant(v), nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "name %q", name)
}

func fromVariant(v crc.Variant) Algorithm {
	switch v {
	case crc.MPEG2:
		return CRC32MPEG2
	case crc.XFER:
		return CRC32XFER
	case crc.AIXM:
		return CRC32AIXM
	default:
		panic(errors.Wrapf(crc.ErrUnknownVariant, "tag %d", uint8(v)))
	}
}

// CalculateChecksum calculates checksum for data using algo.
func CalculateChecksum(data []byte, algo Algorithm) uint64 {
	var sum uint64
	switch algo {
	case CRC32:
		sum = uint64(crc.ChecksumIEEE(data))
	case CRC32MPEG2:
		sum = uint64(crc.ChecksumMPEG2(data))
	case CRC32XFER:
		sum = uint64(crc.ChecksumXFER(data))
	case CRC32AIXM:
		sum = uint64(crc.ChecksumAIXM(data))
	case CRC32C:
		sum = uint64(crc.ChecksumCastagnoli(data))
	case XXHash64:
		sum = xxhash.Sum64(data)
	default:
		panic("checksum type not supported")
	}
	y.NumChecksumsAdd(algo.String(), len(data))
	return sum
}

// VerifyChecksum validates the checksum for the data against the given expected checksum.
func VerifyChecksum(data []byte, algo Algorithm, expected uint64) error {
	actual := CalculateChecksum(data, algo)
	if actual != expected {
		y.NumMismatchesAdd(1)
		return errors.Wrapf(ErrChecksumMismatch, "%s actual: %#x, expected: %#x",
			algo, actual, expected)
	}
	return nil
}
