package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID between the store terminal and the
// API so a cashier-reported error can be matched to a log line.
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an ID and logs method, status,
// latency and path once the handler chain finishes. When the request was
// authenticated the acting user's ID is appended so till activity can be
// traced back to a cashier.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		shortID := requestID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		actor := "-"
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uuid.UUID); ok {
				actor = id.String()[:8]
			}
		}

		log.Printf("req=%s %s %s status=%d took=%v ip=%s user=%s",
			shortID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			actor,
		)

		for _, e := range c.Errors {
			log.Printf("req=%s error: %v", shortID, e.Err)
		}
	}
}
