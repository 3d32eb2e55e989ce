package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GoalHandler struct {
	goals *services.GoalService
}

func NewGoalHandler(goals *services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	goals, err := h.goals.List(userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(goals)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	goal, err := h.goals.Create(userID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *GoalHandler) Complete(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	goalID, err := uuid.Parse(c.Params("goal_id"))
	if err != nil {
		return handleError(c, services.ErrGoalNotFound)
	}

	resp, err := h.goals.Complete(userID, goalID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

func (h *GoalHandler) Generate(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	resp, err := h.goals.Generate(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			return handleError(c, fiber.NewError(fiber.StatusBadRequest, "Not enough recent data to generate goals"))
		}
		return handleError(c, err)
	}

	if resp.AlreadyGenerated {
		return c.JSON(resp)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
