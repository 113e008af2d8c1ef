package api

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/csprng/src/csprng"
)

type Handlers struct {
	r      io.Reader
	health *csprng.Health
	log    *zap.SugaredLogger
}

func NewHandlers(r io.Reader, h *csprng.Health, log *zap.SugaredLogger) *Handlers {
	return &Handlers{r: r, health: h, log: log}
}

func (h *Handlers) sourceOK(c *gin.Context) bool {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "Entropy source unhealthy: missing health monitor")
		return false
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c}.err(http.StatusServiceUnavailable, "Entropy source unhealthy: "+msg)
	return false
}

/*
handle enforces:
1. Entropy-source health check
2. Outcome computation (NO request id here)
3. Error handling
4. Request id generation ONLY after success
5. JSON vs plaintext response
*/
func (h *Handlers) handle(
	c *gin.Context,
	work func() (text string, payload gin.H, status int, errMsg string),
) {
	if !h.sourceOK(c) {
		return
	}

	text, payload, status, errMsg := work()
	if errMsg != "" {
		responder{c}.err(status, errMsg)
		return
	}

	requestID, err := csprng.NewUUID(h.r)
	if err != nil {
		if h.health != nil {
			h.health.Set(false, "error fetching random bytes for request id: "+err.Error())
		}
		responder{c}.err(http.StatusInternalServerError, "Error generating request id.")
		return
	}

	responder{c}.ok(text, payload, requestID)
}

// parseBound converts a query value into an exact integer bound. Fractional
// input is called out separately from garbage so callers learn which rule
// they broke.
func parseBound(name, value string) (int64, string) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return n, ""
	}
	if strings.ContainsAny(value, ".eE") {
		if _, ferr := strconv.ParseFloat(value, 64); ferr == nil {
			return 0, "The " + name + " value must be an integer."
		}
	}
	return 0, "Invalid " + name + " value."
}

func APIKeyFromEnv() string { return os.Getenv("API_KEY") }

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
