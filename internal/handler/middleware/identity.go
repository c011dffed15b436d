package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"theater-tickets/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxBuyerEmailKey = "buyer_email"
	ctxBuyerNameKey  = "buyer_name"
)

// IdentityMiddleware resolves the buyer from the bearer token minted by
// the upstream identity provider. Every booking route is keyed by the
// verified email; the service trusts no client-supplied identity fields.
type IdentityMiddleware struct {
	verifier *jwt.Verifier
}

func NewIdentityMiddleware(verifier *jwt.Verifier) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier}
}

func (m *IdentityMiddleware) RequireBuyer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("token verification failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBuyerEmailKey, claims.Email)
		c.Set(ctxBuyerNameKey, claims.Name)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetBuyerEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxBuyerEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func GetBuyerName(c *gin.Context) string {
	v, exists := c.Get(ctxBuyerNameKey)
	if !exists {
		return ""
	}
	name, _ := v.(string)
	return name
}
