package main

import (
	"log"

	"biophilic/backend/config"
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/routes"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatal("Error initializing database", "error", err)
	}

	var kv database.KeyValueStore = database.NewMemoryKV()
	if db != nil {
		gormKV, err := database.NewGormKV(db)
		if err != nil {
			logger.Fatal("Error preparing key-value store", "error", err)
		}
		kv = gormKV
	}

	store, err := database.New(database.Options{
		KV:         kv,
		Logger:     logger,
		BcryptCost: cfg.BcryptCost,
		Seed:       cfg.SeedDemoData,
	})
	if err != nil {
		logger.Fatal("Error initializing store", "error", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "biophilic",
		// Param and header strings stay valid after the handler returns.
		Immutable: true,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg, logger)

	// Start server
	logger.Info("listening", "port", cfg.ServerPort, "store_driver", cfg.StoreDriver)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
