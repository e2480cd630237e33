package timeentry

import (
	"github.com/ifzc/easy-record-working-api/internal/middleware"
	"github.com/ifzc/easy-record-working-api/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client, logger *zap.Logger) {
	entries := r.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware())
	entries.Use(middleware.ContextLogger(logger))
	{
		entries.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "time_entry", "read"),
			h.List,
		)
		entries.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "time_entry", "create"),
			h.Create,
		)
		entries.POST("/batch",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "time_entry", "create"),
			middleware.Idempotency(rdb),
			h.BatchCreate,
		)
		entries.GET("/summary",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "time_entry", "read"),
			h.Summary,
		)
		entries.GET("/summary/by-project",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "time_entry", "read"),
			h.SummaryByProject,
		)
		entries.GET("/summary/by-employee",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "time_entry", "read"),
			h.SummaryByEmployee,
		)
		entries.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "time_entry", "update"),
			h.Update,
		)
		entries.DELETE("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "time_entry", "delete"),
			h.Delete,
		)
	}
}
