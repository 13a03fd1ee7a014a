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
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownVariant is returned when a variant name or tag is not one of the
// supported bit-serial CRCs.
var ErrUnknownVariant = errors.New("Unknown CRC variant")

// Variant selects one of the non-reflected, bit-serial CRC-32 parameter sets.
type Variant uint8

const (
	// MPEG2 is CRC-32/MPEG-2.
	MPEG2 Variant = iota
	// XFER is CRC-32/XFER.
	XFER
	// AIXM is CRC-32/AIXM, also known as CRC-32Q.
	AIXM

	numVariants
)

// Params describes a width-32 CRC with refin=false, refout=false and xorout=0.
// Check is the CRC of the ASCII string "123456789".
type Params struct {
	Name  string
	Init  uint32
	Poly  uint32
	Check uint32
}

var variants = [numVariants]Params{
	MPEG2: {Name: "CRC-32/MPEG-2", Init: 0xFFFFFFFF, Poly: 0x04C11DB7, Check: 0x0376E6E7},
	XFER:  {Name: "CRC-32/XFER", Init: 0x00000000, Poly: 0x000000AF, Check: 0xBD0BE338},
	AIXM:  {Name: "CRC-32/AIXM", Init: 0x00000000, Poly: 0x814141AB, Check: 0x3010BF7F},
}

var variantNames = map[string]Variant{
	"mpeg2":         MPEG2,
	"mpeg-2":        MPEG2,
	"crc-32/mpeg-2": MPEG2,
	"xfer":          XFER,
	"crc-32/xfer":   XFER,
	"aixm":          AIXM,
	"crc-32/aixm":   AIXM,
	"crc32q":        AIXM,
	"crc-32q":       AIXM,
}

// Variants returns every supported variant in declaration order.
func Variants() []Variant {
	return []Variant{MPEG2, XFER, AIXM}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v < numVariants
}

// Params returns the parameter set of v. It panics if v is not valid.
func (v Variant) Params() Params {
	if !v.Valid() {
		panic(errors.Wrapf(ErrUnknownVariant, "tag %d", uint8(v)))
	}
	return variants[v]
}

func (v Variant) String() string {
	if !v.Valid() {
		return "CRC-32/UNKNOWN"
	}
	return variants[v].Name
}

// ParseVariant looks up a variant by name, ignoring case.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVariant, "name %q", name)
	}
	return v, nil
}
