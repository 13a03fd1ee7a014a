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
	"math"
	"sort"

	"github.com/pkg/errors"
)

// DefaultCardinalityEpsilon bounds the extra relative error of the adaptive
// cardinality ranges to 0.3%.
const DefaultCardinalityEpsilon = 0.003

// Cardinality is the linear counting estimate of the number of distinct flows
// that left occupied of width leaf registers non-empty. A full sketch has no
// finite estimate and yields +Inf.
func Cardinality(occupied, width uint32) float64 {
	if occupied >= width {
		return math.Inf(1)
	}
	m := float64(width)
	return m * math.Log(m/float64(width-occupied))
}

// cardinalitySpacing is how many more registers may be occupied before the
// linear counting estimate moves by more than epsilon.
func cardinalitySpacing(occupied, width uint32, epsilon float64) float64 {
	m, empty := float64(width), float64(width-occupied)
	return empty * math.Log(m/empty) * epsilon
}

// CardinalityRange maps every occupied register count in [Low, High) to one
// cardinality estimate. The switch installs these as TCAM range entries.
type CardinalityRange struct {
	Low, High uint32
	Estimate  uint64
}

// CardinalityRanges splits [0, width) into ranges over which the linear
// counting estimate changes by at most epsilon, so one TCAM entry can serve a
// whole range. Each range is at least one register wide; its estimate is the
// truncated estimate at Low.
func CardinalityRanges(width uint32, epsilon float64) ([]CardinalityRange, error) {
	if width == 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "cardinality ranges need registers")
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 1) {
		return nil, errors.Wrapf(ErrInvalidOptions, "cardinality epsilon %v", epsilon)
	}

	ranges := []CardinalityRange{{Low: 0, High: 1, Estimate: 0}}
	for occ := uint32(1); occ < width; {
		delta := uint32(math.Floor(math.Max(cardinalitySpacing(occ, width, epsilon), 1)))
		high := occ + delta
		if high > width || high < occ {
			high = width
		}
		ranges = append(ranges, CardinalityRange{
			Low:      occ,
			High:     high,
			Estimate: uint64(Cardinality(occ, width)),
		})
		occ = high
	}
	return ranges, nil
}

// LookupCardinality returns the estimate of the range holding occupied. ranges
// must come from CardinalityRanges. It returns false when occupied is beyond
// the last range.
func LookupCardinality(ranges []CardinalityRange, occupied uint32) (uint64, bool) {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].High > occupied })
	if i == len(ranges) || ranges[i].Low > occupied {
		return 0, false
	}
	return ranges[i].Estimate, true
}

// AverageOccupied is the per-tree number of occupied leaf registers when
// occupiedTotal is summed over depths trees, rounded down.
func AverageOccupied(occupiedTotal uint64, depths int) uint32 {
	if depths <= 0 {
		return 0
	}
	return uint32(occupiedTotal / uint64(depths))
}

// FlowSize is the count-min estimate of a flow's size: the smallest counter
// value the flow maps to across all depths. It returns 0 for no counters.
func FlowSize(counters ...uint64) uint64 {
	if len(counters) == 0 {
		return 0
	}
	est := counters[0]
	for _, c := range counters[1:] {
		if c < est {
			est = c
		}
	}
	return est
}

// CounterBits are the register sizes of the sketch levels, leaf level first.
var CounterBits = []uint{8, 16, 32}

// FlowCount decodes the count one tree holds for a flow from the register
// values read along its path, leaf level first, with registers of bits[i]
// bits at level i. A level whose cumulative count sits at its overflow marker
// continues in the next level; path only needs to reach the first level that
// did not overflow.
func FlowCount(path []uint64, bits []uint) uint64 {
	var base uint64
	for i, v := range path {
		count := v + base
		if i == len(path)-1 || i == len(bits)-1 {
			return count
		}
		// Level i holds 2^b - 2 counts; one more is its overflow marker.
		base += uint64(1)<<bits[i] - 2
		if count != base+1 {
			return count
		}
	}
	return 0
}
