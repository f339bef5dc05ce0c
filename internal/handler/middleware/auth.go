package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"codevend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SecretAuthMiddleware guards the API with a single shared secret.
// The secret is accepted either as a bearer token or via X-API-Secret.
type SecretAuthMiddleware struct {
	secret string
}

func NewSecretAuthMiddleware(cfg config.APIConfig) *SecretAuthMiddleware {
	return &SecretAuthMiddleware{secret: cfg.Secret}
}

func (m *SecretAuthMiddleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		var presented string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			presented = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if presented == "" {
			presented = c.GetHeader("X-API-Secret")
		}

		if presented == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "API secret required",
			})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(m.secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API secret",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
