// campus-crud/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"campus-crud/config"
	"campus-crud/internal/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.LoadEnv()
	config.ConnectDB()
	config.ConnectRedis()

	r := gin.New()
	r.Use(gin.Recovery())

	routes.SetupRoutes(r)

	port := config.GetEnv("PORT", "8080")
	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
