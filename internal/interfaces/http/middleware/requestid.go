package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shop/internal/shared/constants"
	"shop/internal/shared/logger"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 64

// RequestID reuses a client supplied X-Request-ID or generates one, echoes it in
// the response and stores a request scoped logger in the request context.
func RequestID(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		ctx := logger.WithContext(c.Request.Context(), log.With("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
