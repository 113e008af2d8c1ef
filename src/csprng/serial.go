package csprng

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// NewSerialSource opens a hardware RNG on a serial port, configured from
// the environment, and verifies it with an initial health check.
// Required env vars:
//   - SERIAL_DEVICE_NAME (e.g. /dev/ttyACM0 or COM3)
//   - SERIAL_BAUD_RATE
//   - SERIAL_READ_TIMEOUT (milliseconds)
func NewSerialSource() (io.Reader, *Health, error) {
	name := os.Getenv("SERIAL_DEVICE_NAME")
	if name == "" {
		return nil, nil, errors.New("SERIAL_DEVICE_NAME is required")
	}

	baudStr := os.Getenv("SERIAL_BAUD_RATE")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud <= 0 {
		return nil, nil, errors.Errorf("invalid SERIAL_BAUD_RATE: %q", baudStr)
	}

	timeoutStr := os.Getenv("SERIAL_READ_TIMEOUT")
	timeoutMs, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutMs < 0 {
		return nil, nil, errors.Errorf("invalid SERIAL_READ_TIMEOUT: %q", timeoutStr)
	}

	cfg := &serial.Config{
		Name:        name,
		Baud:        baud,
		Size:        8,
		ReadTimeout: time.Duration(timeoutMs) * time.Millisecond,
	}

	p, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening serial RNG")
	}

	h := NewHealth()
	if err := CheckSource(p, h); err != nil {
		h.Set(false, err.Error())
		return nil, h, err
	}
	h.Set(true, "")

	return p, h, nil
}
