package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 64
)

// RequestID propagates the caller's X-Request-ID when it is printable and
// short, otherwise it mints a UUID. The id is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(rid); i++ {
		b := rid[i]
		if b < 0x21 || b > 0x7e {
			return false
		}
	}
	return true
}
