package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	goals  *services.GoalService
	badges *services.BadgeService
}

func NewAdminHandler(goals *services.GoalService, badges *services.BadgeService) *AdminHandler {
	return &AdminHandler{goals: goals, badges: badges}
}

func (h *AdminHandler) ClearGoals(c *fiber.Ctx) error {
	deleted, err := h.goals.ClearAll()
	if err != nil {
		return handleError(c, err)
	}

	slog.Warn("all goals cleared", "action", "admin_clear_goals", "deleted", deleted)
	return c.JSON(dto.ClearGoalsResponse{Message: "All goals deleted", Deleted: deleted})
}

func (h *AdminHandler) SeedBadges(c *fiber.Ctx) error {
	badges, err := h.badges.EnsureCatalog()
	if err != nil {
		return handleError(c, err)
	}

	resp := make([]dto.BadgeResponse, len(badges))
	for i, b := range badges {
		resp[i] = dto.BadgeResponse{ID: b.ID, Name: b.Name, Description: b.Description, Icon: b.Icon}
	}
	return c.JSON(resp)
}
