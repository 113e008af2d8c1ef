package csprng

import (
	"encoding/hex"
	"fmt"
	"io"
)

// NewUUID generates an RFC4122 UUID v4 from the same entropy stream the
// sampler uses. Generated only after a successful outcome is computed, so
// it cannot bias the outcome's draws.
func NewUUID(r io.Reader) (string, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", err
	}

	// Set version (4) and variant (10xx)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	hex32 := make([]byte, 32)
	hex.Encode(hex32, b[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hex32[0:8], hex32[8:12], hex32[12:16], hex32[16:20], hex32[20:32],
	), nil
}
