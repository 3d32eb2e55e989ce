package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RewardHandler struct {
	rewards *services.RewardService
}

func NewRewardHandler(rewards *services.RewardService) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

func (h *RewardHandler) Get(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	resp, err := h.rewards.Rewards(userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
