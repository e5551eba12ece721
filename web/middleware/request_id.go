package middleware

import (
	"time"

	"lostfound/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIdHeader = "X-Request-Id"

// RequestLogger tags every request with an id, echoes it in the response
// headers and writes one access-log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIdHeader, id)

		start := time.Now()
		c.Next()

		logger.Debugf("%s %s %d %s id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			id,
		)
	}
}
