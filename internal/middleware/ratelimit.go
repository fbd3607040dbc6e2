package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client's bucket is remembered.
const limiterTTL = time.Hour

// RateLimit allows perSecond requests per client IP with the given burst.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(perSecond), burst), limiterTTL
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		},
	)
}
