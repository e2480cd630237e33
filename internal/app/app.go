package app

import (
	"os"

	"github.com/ifzc/easy-record-working-api/internal/auth"
	"github.com/ifzc/easy-record-working-api/internal/employee"
	"github.com/ifzc/easy-record-working-api/internal/messaging/kafka"
	"github.com/ifzc/easy-record-working-api/internal/middleware"
	"github.com/ifzc/easy-record-working-api/internal/project"
	"github.com/ifzc/easy-record-working-api/internal/rbac"
	"github.com/ifzc/easy-record-working-api/internal/shared/connection"
	"github.com/ifzc/easy-record-working-api/internal/timeentry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts every module under
// /api/v1.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	logger := zap.L()

	router.Use(middleware.RequestID())

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	timeEntryRepo := timeentry.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	projectService := project.NewService(projectRepo, logger)
	timeEntryService := timeentry.NewServiceWithOutbox(db, timeEntryRepo, outboxRepo, rdb, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	projectHandler := project.NewHandler(projectService)
	timeEntryHandler := timeentry.NewHandlerWithRedis(timeEntryService, rdb)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
		timeentry.RegisterRoutes(api, timeEntryHandler, rbacService, rdb, logger)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return nil
}
