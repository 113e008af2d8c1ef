package csprng

import (
	"crypto/rand"
	"io"
)

// SecureSource returns the host's cryptographically secure random facility
// as a byte source. It is the default generator when no hardware RNG is
// configured, and is safe for concurrent use.
func SecureSource() io.Reader {
	return rand.Reader
}

// Draw returns an unbiased uniform integer in [minimum, maximum] inclusive
// using the host's secure random facility. Shorthand for callers that do
// not bring their own byte source.
func Draw(minimum, maximum int64) (int64, error) {
	return RandomNumber(SecureSource(), nil, minimum, maximum)
}
