package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHeader is the request header carrying the pre-shared API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth returns a middleware that guards a route with a pre-shared
// API key. The header value must exactly equal the configured key
// (case-sensitive); a missing, blank, or mismatched value is rejected
// with 401 before any other request processing.
func APIKeyAuth(apiKey string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)

		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			log.Warn("api key authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.Bool("header_present", provided != ""),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "missing or invalid API key",
			})
			return
		}

		c.Next()
	}
}
