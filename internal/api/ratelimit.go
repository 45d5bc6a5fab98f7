package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware caps the whole API behind one token bucket. The
// dispatch path fans out to the live facility provider, so the burst
// stays separate from the sustained rate: short spikes from a single
// incident pass, sustained floods get 429 before they reach the
// resolver.
func RateLimitMiddleware(rps, burst int) gin.HandlerFunc {
	if burst < rps {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, retry shortly",
			})
			return
		}
		c.Next()
	}
}
