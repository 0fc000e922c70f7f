package handlers

import (
	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles counseling booking requests
type BookingHandler struct {
	booking *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(booking *services.BookingService) *BookingHandler {
	return &BookingHandler{
		booking: booking,
	}
}

type slotView struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Label string `json:"label"`
}

// Options lists the counselor, the time slots and the session modes
func (h *BookingHandler) Options(c *fiber.Ctx) error {
	slots := make([]slotView, 0, len(services.TimeSlots))
	for _, s := range services.TimeSlots {
		slots = append(slots, slotView{Date: s.Date, Time: s.Time, Label: s.Label()})
	}

	modes := []fiber.Map{}
	for _, mode := range []string{models.ModeWhatsApp, models.ModeZoom, models.ModePhone} {
		modes = append(modes, fiber.Map{"mode": mode, "label": models.ModeLabel(mode)})
	}

	return c.JSON(fiber.Map{
		"counselor":    services.DefaultCounselor,
		"slots":        slots,
		"modes":        modes,
		"default_mode": models.ModeZoom,
	})
}

// Open shows the booking picker
func (h *BookingHandler) Open(c *fiber.Ctx) error {
	form, err := h.booking.Open(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(form)
}

// Select updates the mode and/or slot
func (h *BookingHandler) Select(c *fiber.Ctx) error {
	var sel services.BookingSelection
	if err := c.BodyParser(&sel); err != nil {
		return badRequest(c, "Invalid request body")
	}

	form, err := h.booking.Select(c.Params("id"), sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(form)
}

// Confirm books the selected slot
func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	booking, record, err := h.booking.Confirm(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Counseling session booked successfully",
		"booking": booking,
		"session": record,
	})
}

// Close hides the booking picker
func (h *BookingHandler) Close(c *fiber.Ctx) error {
	if err := h.booking.Close(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
