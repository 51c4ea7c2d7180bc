package routes

import (
	"planiverse/backend/auth"
	"planiverse/backend/config"
	"planiverse/backend/controllers"
	"planiverse/backend/middleware"
	"planiverse/backend/services"
	"planiverse/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, tracker *services.Tracker, hub *store.Hub, verifier auth.Verifier, cfg *config.Config) {
	app.Get("/api/health", controllers.HealthCheck)

	// Auth routes
	authController := controllers.NewAuthController(tracker, verifier, cfg)
	app.Post("/api/auth/session", authController.CreateSession)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(tracker, cfg)
	app.Get("/api/users/:userId", authMiddleware, userController.GetUser)
	app.Post("/api/users/:userId/badges", authMiddleware, userController.AddBadge)

	// Progress routes
	progressController := controllers.NewProgressController(tracker, hub, cfg)
	app.Get("/api/progress/:userId", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress/:userId/day/:dayNumber", authMiddleware, progressController.UpdateDay)
	app.Get("/api/progress/:userId/stream", authMiddleware, progressController.StreamProgress)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(tracker, cfg)
	app.Get("/api/analytics/:userId", authMiddleware, analyticsController.GetAnalytics)

	// Curriculum routes (static catalog, no auth required)
	curriculumController := controllers.NewCurriculumController()
	app.Get("/api/curriculum/day/:dayNumber", curriculumController.GetDay)
}
