package y

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	errMismatch = errors.New("mismatch")
	errShort    = errors.New("short read")
)

func TestCombineErrors(t *testing.T) {
	tests := []struct {
		name    string
		one     error
		other   error
		wantMsg string
		is      []error
	}{
		{"none", nil, nil, "", nil},
		{"first only", errMismatch, nil, "mismatch", []error{errMismatch}},
		{"second only", nil, errShort, "short read", []error{errShort}},
		{"both", errMismatch, errShort, "mismatch; short read", []error{errMismatch, errShort}},
		{"wrapped", Wrapf(errMismatch, "crc32c"), errShort, "crc32c: mismatch; short read",
			[]error{errMismatch, errShort}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CombineErrors(tt.one, tt.other)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantMsg)
			for _, target := range tt.is {
				require.ErrorIs(t, err, target)
			}
		})
	}
}

// Folding a list of verification results, the way a checker reports every failure.
func TestCombineErrorsFold(t *testing.T) {
	var err error
	for _, e := range []error{nil, errMismatch, nil, errShort, nil} {
		err = CombineErrors(err, e)
	}
	require.EqualError(t, err, "mismatch; short read")
	require.ErrorIs(t, err, errMismatch)
	require.ErrorIs(t, err, errShort)

	err = nil
	for i := 0; i < 3; i++ {
		err = CombineErrors(err, nil)
	}
	require.NoError(t, err)
}

func TestWrapfKeepsCause(t *testing.T) {
	err := Wrapf(errMismatch, "while hashing %d bytes", 4)
	require.ErrorIs(t, err, errMismatch)
	require.Equal(t, "while hashing 4 bytes: mismatch", err.Error())
	require.NoError(t, Wrapf(nil, "nothing"))
}

func TestAssertTruefHolds(t *testing.T) {
	AssertTruef(true, "never printed %d", 1)
}
