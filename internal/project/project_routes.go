package project

import (
	"github.com/ifzc/easy-record-working-api/internal/middleware"
	"github.com/ifzc/easy-record-working-api/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, logger *zap.Logger) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "project", "read"),
			h.List,
		)
		projects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "project", "read"),
			h.GetByID,
		)
		projects.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "project", "create"),
			h.Create,
		)
		projects.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "project", "update"),
			h.Update,
		)
		projects.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "project", "delete"),
			h.Delete,
		)
	}
}
