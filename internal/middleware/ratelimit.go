package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/services"
)

// RateLimit rejects requests over the limiter's fixed-window threshold with
// a uniform payload, before any handler logic runs. Keys are the client
// network address.
func RateLimit(limiter *services.FixedWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
