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
	"github.com/pkg/errors"
)

var (
	// ErrChecksumMismatch is returned at checksum mismatch.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
	ErrUnknownAlgorithm = errors.New("Unknown checksum algorithm")

	// ErrInvalidOptions is returned by NewLocator when the options describe an
	// unusable sketch, e.g. no depths or a zero register width.
	ErrInvalidOptions = errors.New("Invalid sketch options")

	// ErrOutOfRange is returned when a depth or level outside the sketch is requested.
	ErrOutOfRange = errors.New("Depth or level out of range")

	// ErrInvalidKey is returned when a flow key cannot be parsed.
	ErrInvalidKey = errors.New("Invalid flow key, expected an IPv4 address")
)
