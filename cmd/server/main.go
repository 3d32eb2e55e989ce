package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.StdoutHandler(),
		dbLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Text-generation providers
	textModel, err := ai.New(context.Background(), cfg)
	if err != nil {
		slog.Error("AI client setup failed", "error", err)
		os.Exit(1)
	}
	if textModel.Configured() {
		slog.Info("AI providers ready", "primary", textModel.Name())
	} else {
		slog.Warn("no AI provider configured; goal generation and recommendations are disabled")
	}

	// Services
	authService := services.NewAuthService(db, cfg)
	entryService := services.NewEntryService(db)
	badgeService := services.NewBadgeService(db)
	goalService := services.NewGoalService(db, textModel, badgeService, cfg.GoalGenerationCooldown, cfg.AITimeout)
	rewardService := services.NewRewardService(db, badgeService)
	recommendationService := services.NewRecommendationService(db, textModel, cfg.AITimeout)

	if _, err := badgeService.EnsureCatalog(); err != nil {
		slog.Error("badge catalog seeding failed", "error", err)
		os.Exit(1)
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${respHeader:X-Request-ID}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, db, routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Health: handlers.NewHealthHandler(db, textModel),
		Data:   handlers.NewDataHandler(entryService, recommendationService),
		Goal:   handlers.NewGoalHandler(goalService),
		Reward: handlers.NewRewardHandler(rewardService),
		Admin:  handlers.NewAdminHandler(goalService, badgeService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "postgres", cfg.UsesPostgres())
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := textModel.Close(); err != nil {
		slog.Error("AI client close error", "error", err)
	}

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"trace_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
