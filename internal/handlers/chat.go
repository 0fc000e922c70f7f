package handlers

import (
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles sessions and the conversation
type ChatHandler struct {
	sessions *services.SessionManager
	chat     *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(sessions *services.SessionManager, chat *services.ChatService) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		chat:     chat,
	}
}

// CreateSession starts a visitor session with onboarding open
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	session := h.sessions.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session":          session,
		"quick_actions":    services.QuickActions,
		"education_levels": services.EducationLevels,
	})
}

// GetSession returns the session state
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.sessions.GetSession(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// EndSession expires the session
func (h *ChatHandler) EndSession(c *fiber.Ctx) error {
	if err := h.sessions.ExpireSession(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPanel opens or closes a panel
func (h *ChatHandler) SetPanel(c *fiber.Ctx) error {
	var req struct {
		Open bool `json:"open"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := c.Params("id")
	if err := h.sessions.SetPanel(id, services.Panel(c.Params("panel")), req.Open); err != nil {
		return respondError(c, err)
	}

	session, err := h.sessions.GetSession(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"panels": session.Panels})
}

// SendMessage handles a student chat message
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	exchange, err := h.chat.SendMessage(c.Params("id"), req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exchange)
}

// QuickAction sends one of the fixed shortcut messages
func (h *ChatHandler) QuickAction(c *fiber.Ctx) error {
	exchange, err := h.chat.TriggerQuickAction(c.Params("id"), c.Params("action"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exchange)
}

// ListQuickActions returns the shortcut menu
func (h *ChatHandler) ListQuickActions(c *fiber.Ctx) error {
	return c.JSON(services.QuickActions)
}

// Transcript returns the session's messages in order
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	msgs, err := h.chat.Transcript(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"messages": msgs,
		"count":    len(msgs),
	})
}

// ArchivedTranscript returns the session's messages from the archive
func (h *ChatHandler) ArchivedTranscript(c *fiber.Ctx) error {
	msgs, err := h.chat.ArchivedTranscript(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"messages": msgs,
		"count":    len(msgs),
	})
}
