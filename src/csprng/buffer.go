package csprng

import "bytes"

// NormalizeBuffer exposes any supported binary buffer representation as a
// plain byte slice. It is the only place the seed API accepts anything
// other than []byte; unsupported values fail with ErrNotBuffer rather than
// being duck-typed into bytes.
func NormalizeBuffer(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case *bytes.Buffer:
		if b == nil {
			return nil, ErrNotBuffer
		}
		return b.Bytes(), nil
	case *bytes.Reader:
		if b == nil {
			return nil, ErrNotBuffer
		}
		if b.Len() == 0 {
			return []byte{}, nil
		}
		out := make([]byte, b.Len())
		if _, err := b.ReadAt(out, 0); err != nil {
			return nil, ErrNotBuffer
		}
		return out, nil
	default:
		return nil, ErrNotBuffer
	}
}
