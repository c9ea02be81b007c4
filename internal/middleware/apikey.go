package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware guards the server-to-server voice routes. The bot
// platform sends the key either as an 'x-api-key' header or as a '?key='
// query parameter, and sometimes percent-encodes characters like '!' and
// '$', so both forms are unescaped before the constant-time compare.
// The expected key is injected at wiring time, never read from the
// environment here.
func APIKeyMiddleware(expected string) gin.HandlerFunc {
	expected = strings.TrimSpace(expected)

	return func(c *gin.Context) {
		provided := c.GetHeader("x-api-key")
		if provided == "" {
			provided = c.Query("key")
		}
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		if decoded, err := url.QueryUnescape(provided); err == nil {
			provided = decoded
		}
		provided = strings.TrimSpace(provided)

		if expected == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Next()
	}
}
