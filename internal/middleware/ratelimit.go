package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestCounter counts requests per key within a fixed window. Satisfied by
// the Redis client.
type RequestCounter interface {
	CountRequest(key string, window time.Duration) (int64, error)
}

// RateLimit throttles a route with a fixed-window counter keyed by client
// IP. When the counter backend is unreachable the request is let through —
// blocking every checkout is worse than briefly losing the limit.
func RateLimit(counter RequestCounter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "orders:ip:" + c.ClientIP()

		count, err := counter.CountRequest(key, window)
		if err != nil {
			c.Next()
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
