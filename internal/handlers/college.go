package handlers

import (
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CollegeHandler handles the colleges panel
type CollegeHandler struct {
	colleges *services.CollegeService
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(colleges *services.CollegeService) *CollegeHandler {
	return &CollegeHandler{
		colleges: colleges,
	}
}

// Top lists the colleges shown in the panel
func (h *CollegeHandler) Top(c *fiber.Ctx) error {
	colleges, err := h.colleges.Top()
	if err != nil {
		return respondError(c, err)
	}

	items := make([]fiber.Map, 0, len(colleges))
	for _, college := range colleges {
		items = append(items, fiber.Map{
			"college":  college,
			"fee_band": college.FeeBand(),
		})
	}
	return c.JSON(fiber.Map{
		"colleges": items,
		"count":    len(items),
	})
}

// ViewDetails posts the college summary into the chat
func (h *CollegeHandler) ViewDetails(c *fiber.Ctx) error {
	msg, err := h.colleges.ViewDetails(c.Params("id"), c.Params("collegeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// Apply posts the application checklist into the chat
func (h *CollegeHandler) Apply(c *fiber.Ctx) error {
	msg, err := h.colleges.Apply(c.Params("id"), c.Params("collegeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// Open shows the colleges panel
func (h *CollegeHandler) Open(c *fiber.Ctx) error {
	if err := h.colleges.Open(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close hides the colleges panel
func (h *CollegeHandler) Close(c *fiber.Ctx) error {
	if err := h.colleges.Close(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
