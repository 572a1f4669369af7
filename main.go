package main

import (
	"context"
	"log"
	"time"

	"coursebuilder/config"
	controllers "coursebuilder/controllers/course"
	"coursebuilder/database"
	courseRoutes "coursebuilder/routers/courseRoutes"
	"coursebuilder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := database.Connect(ctx, cfg.MongoURL, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	providerTimeout := time.Duration(cfg.ProviderTimeoutSec) * time.Second
	generator := services.NewContentGenerator(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.AnthropicModel, cfg.AnthropicTokens, providerTimeout)
	videos := services.NewVideoProvider(cfg.YouTubeAPIKey, cfg.YouTubeBaseURL, providerTimeout)
	paid := services.NewPaidProvider()

	assembler := services.NewAssembler(generator, videos, paid, store, cfg.MaxVideoResults)
	progress := services.NewProgressService(store)
	controller := controllers.NewCourseController(assembler, progress, videos, store)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app, controller)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
