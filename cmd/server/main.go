package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/toruktube/revive-app-sub001/internal/config"
	"github.com/toruktube/revive-app-sub001/internal/database"
	"github.com/toruktube/revive-app-sub001/internal/routes"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Load the working snapshot
	store, closeStore, err := database.OpenStore(context.Background(), cfg, time.Now())
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	defer closeStore()

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"env":    cfg.AppEnv,
		})
	})
	routes.RegisterRoutes(app, store)

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
