package csprng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// Health tracks whether the entropy source looks trustworthy. It combines
// passive accounting (draws and rejections observed by the sampler) with
// active probing (CheckSource, PeriodicCheck).
type Health struct {
	mu            sync.RWMutex
	ok            bool
	lastErr       string
	lastCheckedAt time.Time

	// stuck-output detection state
	lastWord    uint32
	wordRepeats int

	// sampler accounting
	draws      uint64
	rejections uint64
}

func NewHealth() *Health { return &Health{ok: false} }

func (h *Health) Set(ok bool, errMsg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ok = ok
	h.lastErr = errMsg
	h.lastCheckedAt = time.Now()
}

func (h *Health) Snapshot() (ok bool, errMsg string, t time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ok, h.lastErr, h.lastCheckedAt
}

// RecordDraw notes one successful draw that was preceded by rejected
// attempts. The sampler calls this on every accepted value.
func (h *Health) RecordDraw(rejected int) {
	h.mu.Lock()
	h.draws++
	h.rejections += uint64(rejected)
	h.mu.Unlock()
}

// Stats reports the totals accumulated by RecordDraw. For a healthy source
// rejections stay well below draws.
func (h *Health) Stats() (draws, rejections uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.draws, h.rejections
}

// CheckSource performs a lightweight sanity check on r. It cannot prove
// randomness, but it detects disconnection, stuck output, and similar
// hardware failures before the source is put behind the sampler.
func CheckSource(r io.Reader, h *Health) error {
	const sampleBytes = 256
	buf := make([]byte, sampleBytes)

	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("entropy source read failed: %w", err)
	}

	allSame := true
	for i := 1; i < len(buf); i++ {
		if buf[i] != buf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("entropy source appears stuck (all sampled bytes identical)")
	}

	// Excessive 32-bit word repeats
	var prev uint32
	repeats := 0
	words := 0
	for i := 0; i+4 <= len(buf); i += 4 {
		w := binary.BigEndian.Uint32(buf[i : i+4])
		if words > 0 && w == prev {
			repeats++
		}
		prev = w
		words++
	}
	if words > 1 && repeats > (words-1)*3/4 {
		return errors.New("entropy source appears stuck (32-bit words repeating excessively)")
	}

	if h != nil {
		h.mu.Lock()
		h.lastWord = prev
		h.wordRepeats = 0
		h.mu.Unlock()
	}

	distinct := make(map[byte]struct{}, 256)
	for _, b := range buf {
		distinct[b] = struct{}{}
	}
	if len(distinct) < 8 {
		return fmt.Errorf("entropy sample has too few distinct byte values (%d)", len(distinct))
	}

	return nil
}

// PeriodicCheck samples r at the given interval and flips h when the
// source fails or starts repeating itself. Runs until the process exits.
func PeriodicCheck(r io.Reader, h *Health, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var buf [4]byte
	for range ticker.C {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			h.Set(false, "entropy source read failed: "+err.Error())
			continue
		}

		w := binary.BigEndian.Uint32(buf[:])

		h.mu.Lock()
		if w == h.lastWord {
			h.wordRepeats++
		} else {
			h.wordRepeats = 0
		}
		h.lastWord = w

		// 20 identical 32-bit values in a row is astronomically unlikely
		// for a healthy source.
		if h.wordRepeats >= 20 {
			h.ok = false
			h.lastErr = "entropy source appears stuck (repeating identical 32-bit outputs)"
			h.lastCheckedAt = time.Now()
			h.mu.Unlock()
			continue
		}

		h.ok = true
		h.lastErr = ""
		h.lastCheckedAt = time.Now()
		h.mu.Unlock()
	}
}
