package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kaelif/QuickLink/internal/config"
	"github.com/kaelif/QuickLink/internal/database"
	"github.com/kaelif/QuickLink/internal/routes"
	"github.com/kaelif/QuickLink/internal/storage"
	"github.com/kaelif/QuickLink/internal/store"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database (seed mode runs without one)
	if !cfg.UseSeedData {
		if cfg.DBUrl == "" {
			log.Fatal("DB_URL is required when USE_SEED_DATA is off")
		}
		if err := database.ConnectDB(cfg.DBUrl); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB()
	}

	// 3. Open local storage and load the stores
	kv, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	matches := store.NewMatchStore(kv, cfg.CirculatePassedCards(), nil)
	filters := store.NewFilterStore(kv, nil)
	profiles := store.NewProfileStore(kv, nil)

	ctx := context.Background()
	if err := matches.Load(ctx); err != nil {
		log.Fatalf("Failed to load match store: %v", err)
	}
	if err := filters.Load(ctx); err != nil {
		log.Fatalf("Failed to load filter store: %v", err)
	}
	if err := profiles.Load(ctx); err != nil {
		log.Fatalf("Failed to load profile store: %v", err)
	}

	// 4. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB, matches, filters, profiles); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 5. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
