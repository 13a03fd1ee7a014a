package hashcalc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fcm-sketch/hashcalc/y"
)

func TestParseIPv4(t *testing.T) {
	key, err := ParseIPv4("192.168.1.1")
	require.NoError(t, err)
	require.Equal(t, []byte{0xC0, 0xA8, 0x01, 0x01}, key)

	for _, s := range []string{"", "192.168.1", "192.168.1.256", "fe80::1", "host"} {
		_, err := ParseIPv4(s)
		require.ErrorIs(t, err, ErrInvalidKey, s)
	}
}

func TestLocatorDefaults(t *testing.T) {
	l, err := NewLocator(DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, l.Depths())
	require.Equal(t, 3, l.Levels())

	key, err := ParseIPv4("192.168.1.1")
	require.NoError(t, err)

	require.Equal(t, []uint32{4001250325, 3215923968}, l.Hashes(key))

	idx, err := l.Index(key, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(408597), idx)
	idx, err = l.Index(key, 1, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(465664), idx)

	all := l.Indexes(key)
	require.Equal(t, [][]uint32{
		{4001250325 % LevelOneWidth, 4001250325 % LevelTwoWidth, 4001250325 % LevelThreeWidth},
		{3215923968 % LevelOneWidth, 3215923968 % LevelTwoWidth, 3215923968 % LevelThreeWidth},
	}, all)
}

func TestLocatorCastagnoliDepth(t *testing.T) {
	l, err := NewLocator(DefaultOptions().WithDepths(CRC32C).WithLevelWidths(LevelOneWidth))
	require.NoError(t, err)
	idx, err := l.Index([]byte{192, 168, 1, 1}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(161017), idx)
}

func TestLocatorOutOfRange(t *testing.T) {
	l, err := NewLocator(DefaultOptions())
	require.NoError(t, err)
	key := []byte{10, 0, 0, 1}

	for _, dl := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err := l.Index(key, dl[0], dl[1])
		require.ErrorIs(t, err, ErrOutOfRange, "depth %d level %d", dl[0], dl[1])
	}
	_, err = l.Hash(key, 5)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestLocatorInvalidOptions(t *testing.T) {
	for _, opt := range []Options{
		DefaultOptions().WithDepths(),
		DefaultOptions().WithLevelWidths(),
		DefaultOptions().WithLevelWidths(LevelOneWidth, 0),
		DefaultOptions().WithDepths(CRC32, Algorithm(77)),
	} {
		_, err := NewLocator(opt)
		require.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestLocatorCopiesOptions(t *testing.T) {
	depths := []Algorithm{CRC32}
	opt := DefaultOptions()
	opt.Depths = depths
	l, err := NewLocator(opt)
	require.NoError(t, err)

	depths[0] = CRC32C
	h, err := l.Hash([]byte("123456789"), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xCBF43926), h)
}

func TestLocatorLogsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewLocator(DefaultOptions().WithLogger(y.NewLogger(&buf, y.DEBUG)))
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "DEBUG: Sketch locator"), buf.String())

	opt := DefaultOptions()
	opt.Logger = nil
	_, err = NewLocator(opt)
	require.NoError(t, err)
}
