package handlers

import (
	"fmt"
	"strconv"

	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// OnboardingHandler drives the profile wizard
type OnboardingHandler struct {
	onboarding *services.OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboarding *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboarding,
	}
}

// Update sets profile fields, e.g. {"name": "Priya", "budget_max": 400000}
func (h *OnboardingHandler) Update(c *fiber.Ctx) error {
	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.onboarding.Update(c.Params("id"), formFields(body))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Next advances the wizard, completing onboarding on the last step
func (h *OnboardingHandler) Next(c *fiber.Ctx) error {
	result, err := h.onboarding.Next(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if result.Completed {
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	return c.JSON(result)
}

// Back returns to the previous step
func (h *OnboardingHandler) Back(c *fiber.Ctx) error {
	result, err := h.onboarding.Back(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Close skips onboarding
func (h *OnboardingHandler) Close(c *fiber.Ctx) error {
	if err := h.onboarding.Close(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Onboarding skipped",
	})
}

// formFields turns a JSON object into wizard input. Numbers keep their JSON
// spelling and null clears the field.
func formFields(body map[string]any) map[string]string {
	fields := make(map[string]string, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case nil:
			fields[key] = ""
		case string:
			fields[key] = v
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			fields[key] = fmt.Sprint(v)
		}
	}
	return fields
}
