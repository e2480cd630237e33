package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ifzc/easy-record-working-api/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ContextLogger is mounted after AuthMiddleware, so the identity keys
// must already be in the gin context when it builds the request logger.
func TestContextLoggerCarriesIdentityFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	group := router.Group("/api")
	group.Use(func(c *gin.Context) {
		c.Set("request_id", "rid-1")
		c.Set("user_id", "user-1")
		c.Set("tenant_id", "tenant-1")
		c.Next()
	})
	group.Use(ContextLogger(logger))
	group.GET("/entries", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("listed entries")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "tenant-1", fields["tenant_id"])
}
