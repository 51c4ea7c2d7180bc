package main

import (
	"context"
	"log"

	"planiverse/backend/auth"
	"planiverse/backend/config"
	"planiverse/backend/jobs"
	"planiverse/backend/middleware"
	"planiverse/backend/routes"
	"planiverse/backend/services"
	"planiverse/backend/store"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	ctx := context.Background()

	// Initialize document store
	var backing store.Store
	switch cfg.StoreBackend {
	case "firebase":
		backing, err = store.NewFirebaseStore(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseDatabaseURL)
		if err != nil {
			log.Fatalf("Error initializing firebase store: %v", err)
		}
	case "postgres":
		db, dbErr := utils.InitDB(cfg)
		if dbErr != nil {
			log.Fatalf("Error initializing database: %v", dbErr)
		}
		backing, err = store.NewSQLStore(db)
		if err != nil {
			log.Fatalf("Error initializing sql store: %v", err)
		}
	case "memory":
		logger.Println("Using in-memory store; data is lost on restart")
		backing = store.NewMemoryStore()
	default:
		log.Fatalf("Unknown store backend %q", cfg.StoreBackend)
	}

	hub := store.NewHub()
	documents := store.WithNotify(backing, hub)
	tracker := services.NewTracker(documents, cfg.StartDate)

	// Initialize ID token verifier
	var verifier auth.Verifier
	if cfg.AuthMode == "firebase" {
		verifier, err = auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatalf("Error initializing firebase verifier: %v", err)
		}
	} else {
		logger.Println("Using local auth mode; ID tokens are not verified")
		verifier = auth.LocalVerifier{}
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, tracker, hub, verifier, cfg)

	// Daily stats snapshot
	scheduler := cron.New()
	if err := jobs.NewSnapshotJob(documents, logger).Schedule(scheduler); err != nil {
		log.Fatalf("Error scheduling stats snapshot: %v", err)
	}
	scheduler.Start()

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
