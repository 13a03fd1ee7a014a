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

	"github.com/fcm-sketch/hashcalc/y"
)

// Register widths of the three FCM sketch levels (8, 16 and 32-bit counters).
const (
	LevelOneWidth   = 524288
	LevelTwoWidth   = 65536
	LevelThreeWidth = 8192
)

// Options are params for creating a Locator.
//
// This package provides DefaultOptions which contains options that match the
// sketch deployed on the switch. Use the WithX methods to adjust them, e.g.
//
//	opt := hashcalc.DefaultOptions().WithDepths(hashcalc.CRC32, hashcalc.CRC32C)
type Options struct {
	// Depths holds one hash algorithm per sketch tree.
	Depths []Algorithm
	// LevelWidths holds the number of registers of each level, leaf level first.
	LevelWidths []uint32

	Logger y.Logger
}

// DefaultOptions returns two trees hashed with CRC-32 and CRC-32/MPEG-2 over
// three levels of 524288, 65536 and 8192 registers.
func DefaultOptions() Options {
	return Options{
		Depths:      []Algorithm{CRC32, CRC32MPEG2},
		LevelWidths: []uint32{LevelOneWidth, LevelTwoWidth, LevelThreeWidth},
		Logger:      y.DefaultLogger(),
	}
}

// WithDepths returns a new Options value with Depths set to the given algorithms.
func (opt Options) WithDepths(algos ...Algorithm) Options {
	opt.Depths = append([]Algorithm(nil), algos...)
	return opt
}

// WithLevelWidths returns a new Options value with LevelWidths set to the given widths.
func (opt Options) WithLevelWidths(widths ...uint32) Options {
	opt.LevelWidths = append([]uint32(nil), widths...)
	return opt
}

// WithLogger returns a new Options value with Logger set to the given logger.
//
// The default value of Logger writes to stderr using the log package from the Go standard library.
func (opt Options) WithLogger(val y.Logger) Options {
	opt.Logger = val
	return opt
}

func (opt *Options) validate() error {
	if len(opt.Depths) == 0 {
		return errors.Wrapf(ErrInvalidOptions, "at least one depth is required")
	}
	for i, a := range opt.Depths {
		if a >= numAlgorithms {
			return errors.Wrapf(ErrInvalidOptions, "depth %d: %v", i, ErrUnknownAlgorithm)
		}
	}
	if len(opt.LevelWidths) == 0 {
		return errors.Wrapf(ErrInvalidOptions, "at least one level is required")
	}
	for i, w := range opt.LevelWidths {
		if w == 0 {
			return errors.Wrapf(ErrInvalidOptions, "level %d has zero registers", i)
		}
	}
	return nil
}
