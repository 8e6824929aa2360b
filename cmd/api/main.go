package main

import (
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"partnerup/internal/config"
	"partnerup/internal/database/migrations"
	"partnerup/internal/handler"
	"partnerup/internal/metrics"
	"partnerup/internal/middleware"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
	"partnerup/internal/service"
	"partnerup/internal/service/auth"
	"partnerup/internal/service/profile"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	appLogger := logging.New(cfg.IsProduction(), cfg.LogLevel)
	slog.SetDefault(appLogger)

	metrics.Register()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migrations.CheckDBMigrationStatus(db.DB); err != nil {
		appLogger.Warn("database schema is not up to date, run `migrate up`", "error", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		appLogger.Warn("failed to connect to MinIO, resume upload will not work", "error", err)
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services, err := service.NewServices(repos, redis, minioClient, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    profile.MaxResumeSize + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth, services.Profile)

	appLogger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service, profileService profile.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	protected := app.Group("/api/v1", middleware.AuthRequired(authService, profileService))

	profiles := protected.Group("/profiles")
	profiles.Get("/me", h.Profile.GetMe)
	profiles.Put("/me", h.Profile.UpdateMe)
	profiles.Post("/me/resume", h.Profile.UploadResume)
	profiles.Get("/:profileId", h.Profile.Get)

	protected.Get("/skills", h.Feed.Skills)
	protected.Get("/feed", h.Feed.Get)

	projects := protected.Group("/projects")
	projects.Post("/", h.Project.Create)
	projects.Get("/", h.Project.ListOpen)
	projects.Get("/mine", h.Project.ListMine)
	projects.Patch("/:projectId/status", h.Project.UpdateStatus)
	projects.Delete("/:projectId", h.Project.Delete)
	projects.Post("/:projectId/applications", h.Application.Apply)
	projects.Get("/:projectId/applications", h.Application.ListForProject)

	applications := protected.Group("/applications")
	applications.Get("/mine", h.Application.ListMine)
	applications.Patch("/:applicationId/status", h.Application.UpdateStatus)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
}
