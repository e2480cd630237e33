package middleware

import (
	"net/http"

	"github.com/ifzc/easy-record-working-api/internal/rbac"
	"github.com/ifzc/easy-record-working-api/internal/shared/apperror"
	"github.com/ifzc/easy-record-working-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize gates a route on the caller's role being allowed the
// given resource/action pair. Runs after AuthMiddleware.
func RBACAuthorize(svc rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		allowed, err := svc.Can(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
