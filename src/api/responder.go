package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// responder renders one outcome in the shape the client asked for: JSON when
// the Accept header says so, plaintext otherwise. Successful draws always
// carry their request id.
type responder struct{ c *gin.Context }

func (r responder) wantsJSON() bool {
	return strings.Contains(strings.ToLower(r.c.GetHeader("Accept")), "application/json")
}

func (r responder) err(status int, msg string) {
	if !r.wantsJSON() {
		r.c.String(status, msg)
		return
	}
	r.c.JSON(status, gin.H{"error": msg})
}

func (r responder) ok(text string, payload gin.H, requestID string) {
	if !r.wantsJSON() {
		r.c.String(http.StatusOK, text+"\nrequest_id: "+requestID)
		return
	}

	out := gin.H{"request_id": requestID}
	for k, v := range payload {
		out[k] = v
	}
	r.c.JSON(http.StatusOK, out)
}
