package handlers

import (
	"log"
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// WhatsAppHandler answers students who message the assistant on WhatsApp
type WhatsAppHandler struct {
	notifier services.Notifier // nil when Twilio is not configured
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(notifier services.Notifier) *WhatsAppHandler {
	return &WhatsAppHandler{
		notifier: notifier,
	}
}

// TwilioWebhookPayload represents incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"` // WhatsApp number (whatsapp:+919876543210)
	To         string `form:"To"`
	Body       string `form:"Body"`
	NumMedia   string `form:"NumMedia"`
}

// HandleWebhook replies to an incoming WhatsApp message with the canned answer
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return badRequest(c, "Invalid webhook payload")
	}

	// Status callbacks carry no body
	if strings.TrimSpace(payload.Body) == "" || payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	from := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 WhatsApp Message from %s: %s", from, payload.Body)

	reply := services.GenerateResponse(payload.Body, nil)
	if h.notifier == nil {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", services.MatchedRule(payload.Body))
		return c.SendStatus(fiber.StatusOK)
	}

	if err := h.notifier.SendWhatsAppMessage(from, reply.Message); err != nil {
		log.Printf("❌ Failed to send WhatsApp response: %v", err)
	} else {
		log.Printf("✅ Response sent to %s", from)
	}

	// Twilio only needs the acknowledgement
	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the development stand-in for a Twilio message
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook returns the reply instead of sending it
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid test payload")
	}

	log.Printf("🧪 Test webhook received from %s: %s", payload.From, payload.Message)
	reply := services.GenerateResponse(payload.Message, nil)

	return c.JSON(fiber.Map{
		"success":  true,
		"response": reply.Message,
		"action":   reply.Action,
		"rule":     services.MatchedRule(payload.Message),
	})
}
