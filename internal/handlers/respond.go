package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	errForeignUser = fiber.NewError(fiber.StatusForbidden, "Forbidden: cannot access another user's data")
	errBadBody     = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
)

// scopedUserID returns the :user_id path parameter after checking it names
// the authenticated user.
func scopedUserID(c *fiber.Ctx) (uuid.UUID, error) {
	pathID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	authID, err := middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if authID != pathID {
		return uuid.Nil, errForeignUser
	}
	return pathID, nil
}

// handleError maps service errors to a status and ErrorResponse.
func handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	resp := dto.ErrorResponse{Error: true, Message: "Internal server error"}

	var fe *fiber.Error
	var ve *services.ValidationError
	var ufe *services.UpstreamFormatError

	switch {
	case errors.As(err, &fe):
		status, resp.Message = fe.Code, fe.Message
	case errors.As(err, &ve):
		status, resp.Message = fiber.StatusBadRequest, ve.Message
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEntryExists):
		status, resp.Message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		status, resp.Message = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrGoalNotFound):
		status, resp.Message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrInsufficientData):
		status, resp.Message = fiber.StatusNotFound, err.Error()
	case errors.As(err, &ufe):
		status, resp.Message, resp.Raw = fiber.StatusBadGateway, "Failed to parse AI response", ufe.Raw
	case errors.Is(err, services.ErrUpstreamFailure):
		status, resp.Message = fiber.StatusBadGateway, err.Error()
	case errors.Is(err, services.ErrAINotConfigured):
		status, resp.Message = fiber.StatusServiceUnavailable, err.Error()
	default:
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"trace_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err,
		)
	}

	return c.Status(status).JSON(resp)
}
