package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/csprng/src/csprng"
)

func TestRandomSeedNumber_Deterministic(t *testing.T) {
	seed := []byte{0x2A}

	first, err := csprng.RandomSeedNumber(seed, 0, 100)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := csprng.RandomSeedNumber(seed, 0, 100)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRandomSeedNumber_LittleEndianComposition(t *testing.T) {
	// The first seed byte supplies the low-order bits.
	n, err := csprng.RandomSeedNumber([]byte{0x34, 0x12}, 0, 65535)
	require.NoError(t, err)
	require.Equal(t, int64(0x1234), n)
}

func TestRandomSeedNumber_OffsetsByMinimum(t *testing.T) {
	n, err := csprng.RandomSeedNumber([]byte{0x03}, 100, 110)
	require.NoError(t, err)
	require.Equal(t, int64(103), n)
}

func TestRandomSeedNumber_BiasedSeedSignalsRetry(t *testing.T) {
	// Span 4 needs 3 bits; 0x07 masks to 7 > 4, a biased draw. The caller
	// gets the retry sentinel, not an error.
	n, err := csprng.RandomSeedNumber([]byte{0x07}, 0, 4)
	require.NoError(t, err)
	require.Equal(t, int64(csprng.Rejected), n)
}

func TestRandomSeedNumber_MaskCoversWholeRange(t *testing.T) {
	// An all-ones seed over a power-of-two-sized range must land exactly on
	// the maximum: the mask never cuts the range short.
	n, err := csprng.RandomSeedNumber([]byte{0xFF}, 0, 255)
	require.NoError(t, err)
	require.Equal(t, int64(255), n)
}

func TestRandomSeedNumber_IgnoresExcessSeedBytes(t *testing.T) {
	short, err := csprng.RandomSeedNumber([]byte{0x05}, 0, 9)
	require.NoError(t, err)

	long, err := csprng.RandomSeedNumber([]byte{0x05, 0xDE, 0xAD, 0xBE}, 0, 9)
	require.NoError(t, err)
	require.Equal(t, short, long)
}

func TestRandomSeedNumber_SeedTooShort(t *testing.T) {
	_, err := csprng.RandomSeedNumber([]byte{}, 1, 6)
	require.ErrorIs(t, err, csprng.ErrSeedTooShort)

	_, err = csprng.RandomSeedNumber([]byte{0x01}, 0, 65535)
	require.ErrorIs(t, err, csprng.ErrSeedTooShort)
}

func TestRandomSeedNumber_ValidatesBeforeSeedLength(t *testing.T) {
	// Bound validation is fail-fast: a bad range wins over a short seed.
	_, err := csprng.RandomSeedNumber([]byte{}, 6, 6)
	require.ErrorIs(t, err, csprng.ErrMinHigherThanMax)
}

func TestBytesNeeded_MatchesSeedRequirements(t *testing.T) {
	cases := []struct {
		min  int64
		max  int64
		want int
	}{
		{1, 2, 1},
		{0, 255, 1},
		{0, 256, 2},
		{10, 30, 1},
		{-10, 10, 1},
		{0, 65535, 2},
		{0, 65536, 3},
		{0, 1 << 32, 5},
		{csprng.MinBound, csprng.MaxBound, 7},
	}

	for _, tc := range cases {
		got, err := csprng.BytesNeeded(tc.min, tc.max)
		require.NoError(t, err, "min=%d max=%d", tc.min, tc.max)
		require.Equal(t, tc.want, got, "min=%d max=%d", tc.min, tc.max)

		// A seed of exactly that length is always enough.
		seed := make([]byte, got)
		_, err = csprng.RandomSeedNumber(seed, tc.min, tc.max)
		require.NoError(t, err, "min=%d max=%d", tc.min, tc.max)
	}
}

func TestBytesNeeded_ValidatesBounds(t *testing.T) {
	_, err := csprng.BytesNeeded(5, 5)
	require.ErrorIs(t, err, csprng.ErrMinHigherThanMax)

	_, err = csprng.BytesNeeded(0, csprng.MaxBound+1)
	require.ErrorIs(t, err, csprng.ErrMaxTooHigh)
}
