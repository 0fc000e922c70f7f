package handlers

import (
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version     string
	Environment string
	Storage     string
	WhatsApp    bool
	Archive     bool

	ping     func() error // nil for the memory store
	sessions *services.SessionManager
}

// NewHealthHandler creates a new health handler. ping checks the database and may be nil.
func NewHealthHandler(version, environment, storageLabel string, ping func() error, sessions *services.SessionManager) *HealthHandler {
	return &HealthHandler{
		Version:     version,
		Environment: environment,
		Storage:     storageLabel,
		ping:        ping,
		sessions:    sessions,
	}
}

// Info describes the service and its dependencies
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	response := fiber.Map{
		"service":     "EduGuide Backend API",
		"version":     h.Version,
		"status":      "healthy",
		"environment": h.Environment,
		"storage":     h.Storage,
		"whatsapp": fiber.Map{
			"configured": h.WhatsApp,
			"templates":  len(services.MessageTemplates),
		},
		"archive": h.Archive,
		"services": fiber.Map{
			"sessions":      len(h.sessions.GetActiveSessions()),
			"quick_actions": len(services.QuickActions),
			"reminders":     h.WhatsApp,
		},
	}

	if h.ping != nil {
		dbStatus := "connected"
		if err := h.ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}
		response["database"] = fiber.Map{"status": dbStatus}
	}

	return c.JSON(response)
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	if h.ping != nil && h.ping() != nil {
		status = "unhealthy"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"version": h.Version,
		"services": fiber.Map{
			"database": status == "healthy",
			"twilio":   h.WhatsApp,
		},
	})
}
