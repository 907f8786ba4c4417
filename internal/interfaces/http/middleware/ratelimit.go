package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop/internal/infrastructure/ratelimit"
	"shop/internal/shared/logger"
	"shop/internal/shared/utils"
)

// RateLimit enforces limiter per client IP. If the limiter itself fails the
// request is let through so a Redis outage does not block all traffic.
func RateLimit(limiter ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.FromContext(c.Request.Context(), log).Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
