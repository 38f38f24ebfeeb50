package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey checks the shared-secret X-API-Key header on every
// protected route. A missing header is a request-validation error; a
// present-but-wrong value is an authentication error.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := os.Getenv("API_KEY")
		if apiKey == "" {
			apiKey = "changeme"
		}

		values, ok := c.Request.Header[http.CanonicalHeaderKey("X-API-Key")]
		if !ok || len(values) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "X-API-Key header is required",
				"error":   "Missing API key header",
			})
			c.Abort()
			return
		}

		if values[0] != apiKey {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid API key",
				"error":   "API key does not match",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireUserID extracts the caller-supplied X-User-ID header and sets
// it in the request context. An empty value is a client error, kept
// distinct from a missing header.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		values, ok := c.Request.Header[http.CanonicalHeaderKey("X-User-ID")]
		if !ok || len(values) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "X-User-ID header is required",
				"error":   "Missing user ID header",
			})
			c.Abort()
			return
		}

		if values[0] == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "X-User-ID header must not be empty",
				"error":   "Empty user ID",
			})
			c.Abort()
			return
		}

		c.Set("user_id", values[0])
		c.Next()
	}
}
