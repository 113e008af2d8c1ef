package api

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/csprng/src/csprng"
)

func (h *Handlers) RandomBytes(c *gin.Context) {
	const maxSize = 256

	sizeVar := c.DefaultQuery("size", "1")
	size, err := strconv.Atoi(sizeVar)
	if err != nil || size < 1 || size > maxSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Size must be an integer between 1 and %d.", maxSize))
		return
	}

	h.handle(c, func() (string, gin.H, int, string) {
		buf := make([]byte, size)
		if _, err := io.ReadFull(h.r, buf); err != nil {
			if h.health != nil {
				h.health.Set(false, "error fetching random bytes: "+err.Error())
			}
			h.log.Error(err)
			return "", nil, http.StatusInternalServerError, "Error fetching random bytes."
		}

		out := fmt.Sprintf("%x", buf)
		return out, gin.H{"bytes": out, "size": size}, 0, ""
	})
}

func (h *Handlers) RandomNumber(c *gin.Context) {
	min, msg := parseBound("minimum", c.DefaultQuery("min", "1"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}

	max, msg := parseBound("maximum", c.DefaultQuery("max", "100"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}

	h.handle(c, func() (string, gin.H, int, string) {
		n, err := csprng.RandomNumber(h.r, h.health, min, max)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, csprng.ErrGeneratorExhausted) {
				status = http.StatusInternalServerError
			}
			return "", nil, status, err.Error()
		}

		return fmt.Sprintf("%d", n),
			gin.H{"number": n, "min": min, "max": max},
			0, ""
	})
}

// SeedNumber is the one-shot deterministic variant: the caller supplies the
// entropy as a hex seed and gets either a number or a retry signal back.
// Restricted to non-negative minimums so the rejection sentinel cannot be
// confused with a result.
func (h *Handlers) SeedNumber(c *gin.Context) {
	min, msg := parseBound("minimum", c.DefaultQuery("min", "1"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}
	if min < 0 {
		responder{c}.err(http.StatusBadRequest, "The minimum value must not be negative for seeded draws.")
		return
	}

	max, msg := parseBound("maximum", c.DefaultQuery("max", "100"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}

	seed, err := hex.DecodeString(c.Query("seed"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Seed must be a hex string.")
		return
	}

	buf, err := csprng.NormalizeBuffer(seed)
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Seed is not a binary buffer.")
		return
	}

	h.handle(c, func() (string, gin.H, int, string) {
		n, err := csprng.RandomSeedNumber(buf, min, max)
		if err != nil {
			return "", nil, http.StatusBadRequest, err.Error()
		}

		if n == csprng.Rejected {
			return "rejected; retry with a fresh seed",
				gin.H{"retry": true, "min": min, "max": max},
				0, ""
		}

		return fmt.Sprintf("%d", n),
			gin.H{"number": n, "retry": false, "min": min, "max": max},
			0, ""
	})
}

// BytesNeeded tells callers how large a seed to supply for a range.
func (h *Handlers) BytesNeeded(c *gin.Context) {
	min, msg := parseBound("minimum", c.DefaultQuery("min", "1"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}

	max, msg := parseBound("maximum", c.DefaultQuery("max", "100"))
	if msg != "" {
		responder{c}.err(http.StatusBadRequest, msg)
		return
	}

	n, err := csprng.BytesNeeded(min, max)
	if err != nil {
		responder{c}.err(http.StatusBadRequest, err.Error())
		return
	}

	// No entropy consumed, so no request id either.
	if (responder{c}).wantsJSON() {
		c.JSON(http.StatusOK, gin.H{"bytes_needed": n, "min": min, "max": max})
		return
	}
	c.String(http.StatusOK, strconv.Itoa(n))
}

func (h *Handlers) Roll(c *gin.Context) {
	percentStr := c.DefaultQuery("percent", "25")

	h.handle(c, func() (string, gin.H, int, string) {
		p, err := csprng.ParseProbability(percentStr)
		if err != nil {
			return "", nil, http.StatusBadRequest, err.Error()
		}

		roll, pass, err := p.Roll(h.r, h.health)
		if err != nil {
			return "", nil, http.StatusInternalServerError,
				"Error fetching a random number."
		}

		result := "Fail"
		if pass {
			result = "Pass"
		}

		text := fmt.Sprintf("Rolled %d from %d/%d\n%s", roll, p.Num, p.Den, result)
		return text, gin.H{
			"percent": percentStr,
			"success": p.Num,
			"out_of":  p.Den,
			"roll":    roll,
			"pass":    pass,
		}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		draws, rejections := h.health.Stats()
		responder{c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{
				"ok":           true,
				"last_checked": t.Format(time.RFC3339),
				"draws":        draws,
				"rejections":   rejections,
			},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}
