package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message:           "User created successfully",
		UserID:            user.ID,
		BaselineFootprint: user.BaselineFootprint,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, errBadBody)
	}

	if err := h.authService.Logout(&req); err != nil {
		return handleError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Me returns the profile of the token's user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return handleError(c, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized"))
	}

	resp, err := h.authService.Me(userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// User returns the profile named by :user_id, which must be the caller.
func (h *AuthHandler) User(c *fiber.Ctx) error {
	userID, err := scopedUserID(c)
	if err != nil {
		return handleError(c, err)
	}

	resp, err := h.authService.Me(userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
