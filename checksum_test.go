package hashcalc

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/fcm-sketch/hashcalc/y"
)

func TestCalculateChecksumCheckValues(t *testing.T) {
	data := []byte("123456789")
	tests := []struct {
		algo Algorithm
		want uint64
	}{
		{CRC32, 0xCBF43926},
		{CRC32MPEG2, 0x0376E6E7},
		{CRC32XFER, 0xBD0BE338},
		{CRC32AIXM, 0x3010BF7F},
		{CRC32C, 0xE3069283},
		{XXHash64, xxhash.Sum64(data)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CalculateChecksum(data, tt.algo), tt.algo.String())
	}
}

func TestCalculateChecksumEmpty(t *testing.T) {
	require.Equal(t, uint64(0), CalculateChecksum(nil, CRC32))
	require.Equal(t, uint64(0xFFFFFFFF), CalculateChecksum(nil, CRC32MPEG2))
	require.Equal(t, uint64(0), CalculateChecksum(nil, CRC32XFER))
	require.Equal(t, uint64(0), CalculateChecksum(nil, CRC32AIXM))
	require.Equal(t, uint64(0), CalculateChecksum(nil, CRC32C))
}

func TestCalculateChecksumCountsMetrics(t *testing.T) {
	calls := y.NumChecksums("crc32-xfer")
	hashed := y.BytesHashed("crc32-xfer")
	CalculateChecksum([]byte("abcd"), CRC32XFER)
	require.Equal(t, calls+1, y.NumChecksums("crc32-xfer"))
	require.Equal(t, hashed+4, y.BytesHashed("crc32-xfer"))
}

func TestVerifyChecksum_Success(t *testing.T) {
	data := []byte("hello world")
	for _, algo := range Algorithms() {
		require.NoError(t, VerifyChecksum(data, algo, CalculateChecksum(data, algo)), algo.String())
	}
}

func TestVerifyChecksum_Mismatch(t *testing.T) {
	before := y.NumMismatches()
	err := VerifyChecksum([]byte("x"), CRC32C, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrChecksumMismatch)
	require.Contains(t, err.Error(), "checksum mismatch")
	require.Equal(t, before+1, y.NumMismatches())
}

func TestCalculateChecksum_UnsupportedAlgoPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for unsupported algorithm")
		}
	}()

	_ = CalculateChecksum([]byte("x"), Algorithm(99))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"crc32", CRC32},
		{"IEEE", CRC32},
		{"crc32-mpeg2", CRC32MPEG2},
		{"CRC-32/MPEG-2", CRC32MPEG2},
		{"xfer", CRC32XFER},
		{"crc32q", CRC32AIXM},
		{"crc32c", CRC32C},
		{"castagnoli", CRC32C},
		{"xxhash64", XXHash64},
	}
	for _, tt := range tests {
		a, err := ParseAlgorithm(tt.name)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, a, tt.name)
	}
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}

	_, err := ParseAlgorithm("md5")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Equal(t, "unknown", Algorithm(99).String())
}
