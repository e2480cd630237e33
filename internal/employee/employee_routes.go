package employee

import (
	"github.com/ifzc/easy-record-working-api/internal/middleware"
	"github.com/ifzc/easy-record-working-api/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, logger *zap.Logger) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.List,
		)
		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetOptions,
		)
		employees.GET("/export",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.ExportCSV,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			h.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			h.Create,
		)
		employees.POST("/import",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			h.ImportCSV,
		)
		employees.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			h.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			h.Delete,
		)
	}
}
