package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/emission"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DataHandler struct {
	entries         *services.EntryService
	recommendations *services.RecommendationService
}

func NewDataHandler(entries *services.EntryService, recommendations *services.RecommendationService) *DataHandler {
	return &DataHandler{entries: entries, recommendations: recommendations}
}

func (h *DataHandler) Fact(c *fiber.Ctx) error {
	return c.JSON(dto.FactResponse{Fact: h.entries.Fact()})
}

func (h *DataHandler) Add(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.DailyEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	resp, err := h.entries.AddDaily(userID, emission.Activity{
		Travel:      req.Travel,
		Food:        req.Food,
		Waste:       req.Waste,
		Electricity: req.Electricity,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *DataHandler) Chart(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	points, err := h.entries.Chart(userID, c.Params("filter"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(points)
}

func (h *DataHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	raw, err := h.recommendations.Recommend(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			return handleError(c, fiber.NewError(fiber.StatusNotFound, "No emission data found for the past 30 days"))
		}
		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
