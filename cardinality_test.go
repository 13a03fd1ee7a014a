package hashcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardinality(t *testing.T) {
	require.InDelta(t, 10096.597707452722, Cardinality(10000, LevelOneWidth), 1e-6)
	require.Equal(t, 0.0, Cardinality(0, LevelOneWidth))
	require.InDelta(t, 1.0078948459609032, Cardinality(1, 64), 1e-12)
	require.True(t, math.IsInf(Cardinality(64, 64), 1))
	require.True(t, math.IsInf(Cardinality(65, 64), 1))
}

func TestCardinalityRanges(t *testing.T) {
	ranges, err := CardinalityRanges(64, 0.5)
	require.NoError(t, err)
	require.Equal(t, []CardinalityRange{
		{0, 1, 0}, {1, 2, 1}, {2, 3, 2}, {3, 4, 3}, {4, 5, 4}, {5, 7, 5}, {7, 10, 7},
		{10, 14, 10}, {14, 20, 15}, {20, 28, 23}, {28, 38, 36}, {38, 49, 57},
		{49, 59, 92}, {59, 64, 163},
	}, ranges)
}

func TestCardinalityRangesLeafLevel(t *testing.T) {
	ranges, err := CardinalityRanges(LevelOneWidth, DefaultCardinalityEpsilon)
	require.NoError(t, err)
	require.Less(t, len(ranges), LevelOneWidth/100)

	// Ranges tile [0, width) without gaps, each at least one register wide.
	require.Equal(t, CardinalityRange{0, 1, 0}, ranges[0])
	for i := 1; i < len(ranges); i++ {
		require.Equal(t, ranges[i-1].High, ranges[i].Low, "range %d", i)
		require.Less(t, ranges[i].Low, ranges[i].High, "range %d", i)
		require.LessOrEqual(t, ranges[i-1].Estimate, ranges[i].Estimate, "range %d", i)
	}
	require.Equal(t, uint32(LevelOneWidth), ranges[len(ranges)-1].High)

	est, ok := LookupCardinality(ranges, 400000)
	require.True(t, ok)
	require.InDelta(t, Cardinality(400000, LevelOneWidth), float64(est), 0.01*float64(est))
	require.LessOrEqual(t, est, uint64(Cardinality(400000, LevelOneWidth)))
}

func TestCardinalityRangesInvalid(t *testing.T) {
	for _, eps := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := CardinalityRanges(64, eps)
		require.ErrorIs(t, err, ErrInvalidOptions, "epsilon %v", eps)
	}
	_, err := CardinalityRanges(0, 0.5)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestLookupCardinality(t *testing.T) {
	ranges, err := CardinalityRanges(64, 0.5)
	require.NoError(t, err)

	tests := []struct {
		occupied uint32
		want     uint64
	}{
		{0, 0}, {1, 1}, {5, 5}, {6, 5}, {9, 7}, {37, 36}, {38, 57}, {63, 163},
	}
	for _, tt := range tests {
		est, ok := LookupCardinality(ranges, tt.occupied)
		require.True(t, ok, "occupied %d", tt.occupied)
		require.Equal(t, tt.want, est, "occupied %d", tt.occupied)
	}
	_, ok := LookupCardinality(ranges, 64)
	require.False(t, ok)
	_, ok = LookupCardinality(nil, 0)
	require.False(t, ok)
}

func TestAverageOccupied(t *testing.T) {
	require.Equal(t, uint32(10), AverageOccupied(21, 2))
	require.Equal(t, uint32(0), AverageOccupied(21, 0))
}

func TestFlowSize(t *testing.T) {
	require.Equal(t, uint64(3), FlowSize(7, 3, 9))
	require.Equal(t, uint64(4), FlowSize(4))
	require.Equal(t, uint64(0), FlowSize())
}

func TestFlowCount(t *testing.T) {
	tests := []struct {
		name string
		path []uint64
		want uint64
	}{
		{"empty", nil, 0},
		{"leaf", []uint64{17}, 17},
		{"leaf below marker", []uint64{254, 99}, 254},
		{"level two", []uint64{255, 10}, 264},
		{"level two only read", []uint64{255}, 255},
		{"level three", []uint64{255, 65535, 12}, 65800},
		{"level two below marker", []uint64{255, 65534, 12}, 65788},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FlowCount(tt.path, CounterBits), tt.name)
	}
}
