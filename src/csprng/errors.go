package csprng

import "errors"

// Validation errors are reported before any entropy is consumed. They are
// exported as sentinels so callers can branch on the kind with errors.Is.
var (
	// ErrInvalidGenerator is returned when no byte source was supplied.
	ErrInvalidGenerator = errors.New("the generator must be a readable byte source")

	ErrMinTooLow  = errors.New("the minimum value must not be lower than -9,007,199,254,740,991")
	ErrMinTooHigh = errors.New("the minimum value must not be higher than 9,007,199,254,740,991")
	ErrMaxTooLow  = errors.New("the maximum value must not be lower than -9,007,199,254,740,991")
	ErrMaxTooHigh = errors.New("the maximum value must not be higher than 9,007,199,254,740,991")

	// ErrMinHigherThanMax covers both minimum > maximum and minimum == maximum;
	// a zero-width range is an error, not a single-valued success.
	ErrMinHigherThanMax = errors.New("the minimum value must be strictly smaller than the maximum value")

	// ErrSeedTooShort is returned by the one-shot variant when the supplied
	// seed cannot cover the range. Distinct from a biased draw, which is not
	// an error at all.
	ErrSeedTooShort = errors.New("the seed is too short for the requested range")

	// ErrNotBuffer is returned by NormalizeBuffer for non-buffer values.
	ErrNotBuffer = errors.New("the value is not a binary buffer")

	// ErrGeneratorExhausted is returned if an implausible number of
	// consecutive draws were rejected, which only happens when the byte
	// source is not producing uniform bytes.
	ErrGeneratorExhausted = errors.New("the generator kept producing out-of-range values; it is likely broken")
)
