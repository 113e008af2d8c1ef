package csprng

import (
	"io"
	"sync"
)

// LockedReader serializes Read calls on a shared byte source with a mutex.
// A draw is only unbiased if its bytes come from one uninterrupted read, so
// a source shared across concurrent samplers (and the background health
// monitor) must not interleave reads.
type LockedReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (lr *LockedReader) Read(p []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Read(p)
}

// NewLockedReader wraps r so it is safe for concurrent use. An already
// locked reader is returned as-is.
func NewLockedReader(r io.Reader) io.Reader {
	if r == nil {
		return nil
	}
	if _, ok := r.(*LockedReader); ok {
		return r
	}
	return &LockedReader{r: r}
}
