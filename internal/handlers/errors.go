package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError writes a 4xx body for known error kinds. Anything else is
// returned to the app ErrorHandler, which owns 5xx responses.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		return err
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidOrExpiredCode),
		errors.Is(err, services.ErrDuplicateUser),
		errors.Is(err, services.ErrNoSignupDataFound):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrAuth):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// NewErrorHandler builds the Fiber ErrorHandler. Detail of 5xx errors is
// only exposed when debug is set.
func NewErrorHandler(debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			slog.Error("unhandled server error",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", requestID(c),
				"error", err.Error(),
			)
			message = "Internal server error"
			if debug {
				message = err.Error()
			}
		}

		return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.SuccessResponse{Success: true, Message: message, Data: data})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}
