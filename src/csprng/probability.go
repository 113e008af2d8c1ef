package csprng

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Probability is an exact fraction Num/Den with 0 <= Num <= Den. It is the
// supported way to bring a fractional domain to the integer sampler:
// convert the fraction to integers once, then roll an integer against it.
type Probability struct {
	Num int64
	Den int64
}

// ParseProbability parses a percentage string into an exact fraction.
//
// Accepts "25", "25%", "25.432", "25.432%", with optional surrounding
// spaces and a leading '+'. Negatives and values above 100 are rejected.
// Exact up to 7 decimal places.
func ParseProbability(percent string) (Probability, error) {
	s := strings.TrimSpace(percent)
	if v, ok := strings.CutSuffix(s, "%"); ok {
		s = strings.TrimSpace(v)
	}
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return Probability{}, errors.New("percent is empty")
	}
	if strings.HasPrefix(s, "-") {
		return Probability{}, errors.New("percent must not be negative")
	}
	if strings.Count(s, ".") > 1 {
		return Probability{}, errors.New("invalid percent format")
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return Probability{}, errors.New("invalid percent format")
	}

	// Trailing zeros in the fraction carry no information; trimming them
	// keeps the denominator minimal while staying exact.
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > 7 {
		return Probability{}, errors.New("too many decimal places; max is 7")
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		digits = "0"
	}
	num, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Probability{}, errors.New("percent value too large")
	}

	// den = 100 * 10^decimals, which is also the numerator of 100%.
	den := int64(100)
	for i := 0; i < len(fracPart); i++ {
		den *= 10
	}

	switch {
	case num > den:
		return Probability{}, errors.New("percent must not exceed 100")
	case num == 0:
		return Probability{Num: 0, Den: 1}, nil // always fail
	case num == den:
		return Probability{Num: 1, Den: 1}, nil // always pass
	}
	return Probability{Num: num, Den: den}, nil
}

func digitsOnly(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// Roll draws a uniform integer in [1, p.Den] and reports whether it landed
// within the passing region [1, p.Num]. The degenerate fractions 0/1 and
// 1/1 are decided without consuming entropy, since a single-valued range
// is not drawable.
func (p Probability) Roll(r io.Reader, h *Health) (roll int64, pass bool, err error) {
	if p.Den <= 1 {
		return p.Num, p.Num >= 1, nil
	}
	roll, err = RandomNumber(r, h, 1, p.Den)
	if err != nil {
		return 0, false, err
	}
	return roll, roll <= p.Num, nil
}
