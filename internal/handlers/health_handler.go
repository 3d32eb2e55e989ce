package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProviderStatus reports whether any text-generation provider is set up.
type ProviderStatus interface {
	Name() string
	Configured() bool
}

type HealthHandler struct {
	db *gorm.DB
	ai ProviderStatus
}

func NewHealthHandler(db *gorm.DB, ai ProviderStatus) *HealthHandler {
	return &HealthHandler{db: db, ai: ai}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	aiStatus := "not configured"
	if h.ai != nil && h.ai.Configured() {
		aiStatus = h.ai.Name()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		AI:        aiStatus,
	})
}
