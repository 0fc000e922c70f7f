package handlers

import (
	"errors"
	"log"

	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and storage errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, services.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrSessionExpired):
		return fiber.StatusGone
	case errors.Is(err, storage.ErrConflict),
		errors.Is(err, services.ErrOnboardingClosed),
		errors.Is(err, services.ErrBookingClosed):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrUnknownQuickAction),
		errors.Is(err, services.ErrUnknownField),
		errors.Is(err, services.ErrUnknownPanel),
		errors.Is(err, services.ErrSlotNotSelected),
		errors.Is(err, services.ErrUnknownSlot),
		errors.Is(err, services.ErrInvalidMode):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrArchiveDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// messageFor is the client facing text for err
func messageFor(err error) string {
	switch {
	case errors.Is(err, services.ErrSlotNotSelected):
		return "Please select a date and time"
	case errors.Is(err, services.ErrEmptyMessage):
		return "Message cannot be empty"
	case errors.Is(err, services.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, services.ErrSessionExpired):
		return "Session expired"
	}
	return err.Error()
}

// respondError writes err as a JSON error body. Internal errors are logged and hidden.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": messageFor(err),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
