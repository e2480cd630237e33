package auth

import (
	"time"

	"github.com/ifzc/easy-record-working-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		// brute-force guard on the credential endpoint
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Every(time.Second), 5), h.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", middleware.RateLimitByUser(2, 5), h.Me)
			protected.POST("/change-password", middleware.RateLimitByUser(0.5, 3), h.ChangePassword)
			protected.POST("/logout", middleware.RateLimitByUser(2, 5), h.Logout)
		}
	}
}
