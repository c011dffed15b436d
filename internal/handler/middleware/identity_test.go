//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"theater-tickets/internal/handler/middleware"
	"theater-tickets/internal/pkg/jwt"
	"theater-tickets/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newIdentityRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	identity := middleware.NewIdentityMiddleware(jwt.NewVerifier(testSecret))
	router.GET("/whoami", identity.RequireBuyer(), func(c *gin.Context) {
		email, _ := middleware.GetBuyerEmail(c)
		c.JSON(http.StatusOK, gin.H{
			"email": email,
			"name":  middleware.GetBuyerName(c),
		})
	})
	return router
}

func TestRequireBuyer(t *testing.T) {
	router := newIdentityRouter(t)

	t.Run("valid token resolves the buyer", func(t *testing.T) {
		token, err := jwt.SignForTest(testSecret, "buyer@example.com", "Alex Buyer", time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "buyer@example.com")
		assert.Contains(t, rec.Body.String(), "Alex Buyer")
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.SignForTest(testSecret, "buyer@example.com", "", -time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.SignForTest("wrong-secret", "buyer@example.com", "", time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without an email claim", func(t *testing.T) {
		token, err := jwt.SignForTest(testSecret, "", "", time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
