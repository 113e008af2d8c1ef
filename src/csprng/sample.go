package csprng

import (
	"io"

	"github.com/pkg/errors"
)

// Bounds are capped at 2^53 - 1 in magnitude. This keeps every span well
// inside uint64 arithmetic and matches the largest range callers porting
// seeds from double-precision environments can express exactly.
const (
	MaxBound = 1<<53 - 1
	MinBound = -MaxBound
)

// Rejected is the sentinel returned by RandomSeedNumber when the seed
// produced an out-of-range value. The caller must retry with a fresh seed.
const Rejected = -1

// maxDraws bounds the rejection loop. Each draw is rejected with
// probability below 1/2, so hitting the cap means the source is stuck or
// heavily skewed, not unlucky.
const maxDraws = 128

func checkBounds(minimum, maximum int64) error {
	if minimum < MinBound {
		return ErrMinTooLow
	}
	if minimum > MaxBound {
		return ErrMinTooHigh
	}
	if maximum < MinBound {
		return ErrMaxTooLow
	}
	if maximum > MaxBound {
		return ErrMaxTooHigh
	}
	if minimum >= maximum {
		return ErrMinHigherThanMax
	}
	return nil
}

// reduce composes buf little-endian (byte i supplies bits 8i..8i+7) and
// truncates the result to the mask's bit width.
func reduce(buf []byte, mask uint64) uint64 {
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * uint(i))
	}
	return v & mask
}

// RandomNumber returns an unbiased uniform integer in [minimum, maximum]
// inclusive, drawing entropy from r. Out-of-range draws are discarded and
// redrawn from fresh bytes (rejection sampling), which avoids modulo bias
// assuming r produces independent uniform bytes.
//
// h may be nil; when set, read failures and exhaustion are reported to it.
func RandomNumber(r io.Reader, h *Health, minimum, maximum int64) (int64, error) {
	if r == nil {
		return 0, ErrInvalidGenerator
	}
	if err := checkBounds(minimum, maximum); err != nil {
		return 0, err
	}

	span := uint64(maximum - minimum)
	p := calcParams(span)

	buf := make([]byte, p.bytes)
	for draw := 0; draw < maxDraws; draw++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if h != nil {
				h.Set(false, "error fetching random bytes: "+err.Error())
			}
			return 0, errors.Wrap(err, "fetching random bytes")
		}

		if v := reduce(buf, p.mask); v <= span {
			if h != nil {
				h.RecordDraw(draw)
			}
			return minimum + int64(v), nil
		}
		// reject and retry with fresh bytes
	}

	if h != nil {
		h.Set(false, ErrGeneratorExhausted.Error())
	}
	return 0, ErrGeneratorExhausted
}

// RandomSeedNumber is the one-shot variant of RandomNumber: instead of a
// byte source it takes a fixed seed, so no internal retry is possible. It
// returns Rejected (-1) with a nil error when the masked seed falls outside
// the range; that is a control-flow signal, not a failure, and the caller
// retries with a new seed. Deterministic: identical inputs always yield
// identical outputs.
//
// Because Rejected collides with legal outputs when minimum <= -1, callers
// with negative minimums should use RandomNumber instead.
func RandomSeedNumber(seed []byte, minimum, maximum int64) (int64, error) {
	if err := checkBounds(minimum, maximum); err != nil {
		return 0, err
	}

	span := uint64(maximum - minimum)
	p := calcParams(span)
	if len(seed) < p.bytes {
		return 0, ErrSeedTooShort
	}

	if v := reduce(seed[:p.bytes], p.mask); v <= span {
		return minimum + int64(v), nil
	}
	return Rejected, nil
}
