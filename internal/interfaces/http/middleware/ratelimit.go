package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// RateLimit throttles an endpoint per client IP. Limiter failures fail
// open: an unreachable redis must not take authentication down with it.
func RateLimit(limiter ratelimit.RateLimiter, action string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + action + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "action", action, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
