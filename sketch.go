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
	"net"

	"github.com/pkg/errors"

	"github.com/fcm-sketch/hashcalc/y"
)

// Locator maps flow keys to FCM sketch registers. Each depth hashes the key
// with its own algorithm; the register of a level is hash % width(level).
// A Locator is immutable and safe for concurrent use.
type Locator struct {
	opt Options
}

// NewLocator validates opt and returns a Locator for it.
func NewLocator(opt Options) (*Locator, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if opt.Logger == nil {
		opt.Logger = y.DefaultLogger()
	}
	opt = opt.WithDepths(opt.Depths...).WithLevelWidths(opt.LevelWidths...)
	// Index and Indexes divide by every width.
	y.AssertTruef(len(opt.Depths) > 0 && len(opt.LevelWidths) > 0,
		"locator without depths or levels: %v %v", opt.Depths, opt.LevelWidths)
	for _, w := range opt.LevelWidths {
		y.AssertTruef(w > 0, "locator level width is zero: %v", opt.LevelWidths)
	}
	opt.Logger.Debugf("Sketch locator: depths=%v level widths=%v", opt.Depths, opt.LevelWidths)
	return &Locator{opt: opt}, nil
}

// Depths returns the number of sketch trees.
func (l *Locator) Depths() int { return len(l.opt.Depths) }

// Levels returns the number of levels per tree.
func (l *Locator) Levels() int { return len(l.opt.LevelWidths) }

// Hash returns the 32-bit hash of key used by the given depth. 64-bit
// algorithms are truncated to their low 32 bits.
func (l *Locator) Hash(key []byte, depth int) (uint32, error) {
	if depth < 0 || depth >= len(l.opt.Depths) {
		return 0, errors.Wrapf(ErrOutOfRange, "depth %d, sketch has %d", depth, len(l.opt.Depths))
	}
	return uint32(CalculateChecksum(key, l.opt.Depths[depth])), nil
}

// Hashes returns the hash of key for every depth.
func (l *Locator) Hashes(key []byte) []uint32 {
	hs := make([]uint32, len(l.opt.Depths))
	for d, algo := range l.opt.Depths {
		hs[d] = uint32(CalculateChecksum(key, algo))
	}
	return hs
}

// Index returns the register index of key at the given depth and level.
func (l *Locator) Index(key []byte, depth, level int) (uint32, error) {
	if level < 0 || level >= len(l.opt.LevelWidths) {
		return 0, errors.Wrapf(ErrOutOfRange, "level %d, sketch has %d", level, len(l.opt.LevelWidths))
	}
	h, err := l.Hash(key, depth)
	if err != nil {
		return 0, err
	}
	return h % l.opt.LevelWidths[level], nil
}

// Indexes returns every register index of key, indexed by [depth][level].
func (l *Locator) Indexes(key []byte) [][]uint32 {
	hs := l.Hashes(key)
	out := make([][]uint32, len(hs))
	for d, h := range hs {
		out[d] = make([]uint32, len(l.opt.LevelWidths))
		for lvl, w := range l.opt.LevelWidths {
			out[d][lvl] = h % w
		}
	}
	return out
}

// ParseIPv4 converts a dotted-quad IPv4 address into the 4-byte flow key the
// sketch hashes.
func ParseIPv4(s string) ([]byte, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, errors.Wrapf(ErrInvalidKey, "%q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, errors.Wrapf(ErrInvalidKey, "%q is not IPv4", s)
	}
	return []byte(ip4), nil
}
