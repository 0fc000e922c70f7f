package handlers

import (
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles application status lookups
type ApplicationHandler struct {
	applications *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
	}
}

type applicationView struct {
	*models.Application
	Tone             string   `json:"tone"`
	PendingDocuments []string `json:"pending_documents"`
}

// Lookup searches applications by id substring
func (h *ApplicationHandler) Lookup(c *fiber.Ctx) error {
	var req services.ApplicationLookup
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	apps, err := h.applications.Search(req)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]applicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, applicationView{
			Application:      app,
			Tone:             services.StatusTone(app.Status),
			PendingDocuments: app.PendingDocuments(),
		})
	}

	response := fiber.Map{
		"applications": views,
		"count":        len(views),
	}
	if len(views) == 0 && strings.TrimSpace(req.ApplicationID) != "" {
		response["message"] = services.NoApplicationsMessage
	}
	return c.JSON(response)
}

// Open shows the application panel
func (h *ApplicationHandler) Open(c *fiber.Ctx) error {
	if err := h.applications.Open(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close hides the application panel
func (h *ApplicationHandler) Close(c *fiber.Ctx) error {
	if err := h.applications.Close(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
