package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	Data   *handlers.DataHandler
	Goal   *handlers.GoalHandler
	Reward *handlers.RewardHandler
	Admin  *handlers.AdminHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)
	api.Get("/data/fact", h.Data.Fact)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	auth.Post("/signup", authLimit, h.Auth.Signup)
	auth.Post("/login", authLimit, h.Auth.Login)
	auth.Post("/refresh", authLimit, h.Auth.Refresh)

	jwt := middleware.JWTProtected(cfg)
	auth.Post("/logout", jwt, h.Auth.Logout)
	auth.Get("/me", jwt, h.Auth.Me)
	auth.Get("/user/:user_id", jwt, h.Auth.User)

	// Text-model endpoints: 5 req/min per IP
	aiLimit := limiter.New(limiter.Config{
		Max:               5,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	data := api.Group("/data", jwt)
	data.Post("/add/:user_id", h.Data.Add)
	data.Get("/chart/:user_id/:filter", h.Data.Chart)
	data.Get("/recommendations/:user_id", aiLimit, h.Data.Recommendations)

	goals := api.Group("/goals", jwt)
	goals.Get("/:user_id", h.Goal.List)
	goals.Post("/:user_id", h.Goal.Create)
	goals.Patch("/complete/:user_id/:goal_id", h.Goal.Complete)
	goals.Post("/complete/:user_id/:goal_id", h.Goal.Complete)
	goals.Post("/generate/:user_id", aiLimit, h.Goal.Generate)
	api.Post("/generate_goals/:user_id", jwt, aiLimit, h.Goal.Generate)

	api.Get("/rewards/:user_id", jwt, h.Reward.Get)

	admin := api.Group("/admin", middleware.AdminRequired(db, cfg))
	admin.Delete("/goals", h.Admin.ClearGoals)
	admin.Post("/badges/seed", h.Admin.SeedBadges)
}
