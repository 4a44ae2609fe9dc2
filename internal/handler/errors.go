package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidFormat = "invalid request format"
	msgInternal      = "internal server error"
)

// errorCase maps a sentinel error to an HTTP status and response message
type errorCase struct {
	err     error
	status  int
	message string
}

// respondError writes the first matching case, or a generic 500.
// The underlying error is recorded on the context for the request logger, never sent.
func respondError(c *gin.Context, err error, cases ...errorCase) {
	for _, cs := range cases {
		if errors.Is(err, cs.err) {
			c.JSON(cs.status, gin.H{"error": cs.message})
			return
		}
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}

func respondInvalidFormat(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFormat})
}
