package csprng_test

import (
	"bytes"
	"testing"

	"github.com/lost-woods/csprng/src/csprng"
)

func TestCheckSource_AllSameFails(t *testing.T) {
	h := csprng.NewHealth()
	r := bytes.NewReader(make([]byte, 256))
	if err := csprng.CheckSource(r, h); err == nil {
		t.Fatalf("expected error for all-identical sample")
	}
}

func TestCheckSource_OKOnVariedBytes(t *testing.T) {
	h := csprng.NewHealth()
	buf := make([]byte, 256)
	for i := 0; i < len(buf); i++ {
		buf[i] = byte(i)
	}
	r := bytes.NewReader(buf)
	if err := csprng.CheckSource(r, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckSource_TruncatedSourceFails(t *testing.T) {
	h := csprng.NewHealth()
	r := bytes.NewReader([]byte{0x01, 0x02, 0x03})
	if err := csprng.CheckSource(r, h); err == nil {
		t.Fatalf("expected error for a source that runs dry")
	}
}

func TestHealth_SnapshotReflectsSet(t *testing.T) {
	h := csprng.NewHealth()

	if ok, _, _ := h.Snapshot(); ok {
		t.Fatal("new health should start unhealthy")
	}

	h.Set(true, "")
	ok, msg, checkedAt := h.Snapshot()
	if !ok || msg != "" || checkedAt.IsZero() {
		t.Fatalf("got ok=%v msg=%q checkedAt=%v", ok, msg, checkedAt)
	}

	h.Set(false, "boom")
	ok, msg, _ = h.Snapshot()
	if ok || msg != "boom" {
		t.Fatalf("got ok=%v msg=%q", ok, msg)
	}
}

func TestHealth_StatsAccumulate(t *testing.T) {
	h := csprng.NewHealth()

	h.RecordDraw(0)
	h.RecordDraw(3)
	h.RecordDraw(1)

	draws, rejections := h.Stats()
	if draws != 3 || rejections != 4 {
		t.Fatalf("got draws=%d rejections=%d, want 3 and 4", draws, rejections)
	}
}
