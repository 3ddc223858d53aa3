// campus-crud/internal/routes/router.go
package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"campus-crud/config"
	"campus-crud/internal/handlers"
	"campus-crud/internal/middleware"
	"campus-crud/internal/repository"
	"campus-crud/internal/service"
)

// SetupRoutes builds the handler chain over the shared database connection
// and registers every route on the engine.
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestLogger())

	logger := slog.Default()

	userRepo := repository.NewGormUserRepository(config.DB)
	assignmentRepo := repository.NewGormAssignmentRepository(config.DB)

	userService := service.NewUserService(userRepo, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, logger)

	userHandler := handlers.NewUserHandler(userService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	RegisterAPIRoutes(r, userHandler, assignmentHandler)
}
