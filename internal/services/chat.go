package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
	"github.com/google/uuid"
)

// Chat errors
var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrUnknownQuickAction = errors.New("unknown quick action")
	ErrArchiveDisabled    = errors.New("transcript archive not configured")
)

// QuickAction is a one-tap shortcut below the chat input
type QuickAction struct {
	Action  string `json:"action"`
	Label   string `json:"label"`
	Message string `json:"message"`
	Opens   Panel  `json:"opens,omitempty"`
}

// QuickActions is the fixed shortcut menu
var QuickActions = []QuickAction{
	{Action: "find_colleges", Label: "Find Colleges", Message: "I want to find colleges", Opens: PanelColleges},
	{Action: "recommend_courses", Label: "Recommend Courses", Message: "Can you recommend courses for me?"},
	{Action: "book_counseling", Label: "Book Counseling", Message: "I want to book a free counseling session", Opens: PanelBooking},
	{Action: "whatsapp", Label: "WhatsApp Contact", Message: "How can I contact you via WhatsApp?"},
	{Action: "check_application", Label: "Check Application", Message: "I want to check my application status", Opens: PanelApplication},
	{Action: "live_class", Label: "Join Live Class", Message: "Tell me about live classes"},
}

// actionPanels maps reply actions to the panel they open. show_contact opens nothing.
var actionPanels = map[Action]Panel{
	ActionShowColleges:    PanelColleges,
	ActionShowBooking:     PanelBooking,
	ActionShowApplication: PanelApplication,
}

// ChatExchange is the result of one student submission
type ChatExchange struct {
	StudentMessage *models.ChatMessage `json:"student_message"`
	Reply          Response            `json:"reply"`
}

// ChatService appends messages to session transcripts and answers them
type ChatService struct {
	store      storage.Store
	sessions   *SessionManager
	templates  *TemplateService
	archive    storage.TranscriptArchive
	replyDelay time.Duration
}

// NewChatService creates a new chat service. archive may be nil.
func NewChatService(store storage.Store, sessions *SessionManager, templates *TemplateService, archive storage.TranscriptArchive, replyDelay time.Duration) *ChatService {
	return &ChatService{
		store:      store,
		sessions:   sessions,
		templates:  templates,
		archive:    archive,
		replyDelay: replyDelay,
	}
}

// SendMessage records the student's message and schedules the assistant reply.
// The reply's action opens the matching panel when the reply is delivered.
func (c *ChatService) SendMessage(sessionID, text string) (*ChatExchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	profile, studentID, err := c.sessionProfile(sessionID)
	if err != nil {
		return nil, err
	}

	studentMsg, err := c.appendMessage(sessionID, studentID, text, models.SenderStudent)
	if err != nil {
		return nil, err
	}

	reply := GenerateResponse(text, profile)
	log.Printf("💬 Session %s: rule=%s action=%q", sessionID, MatchedRule(text), reply.Action)

	err = c.deliverReply(sessionID, studentID, reply.Message, func(s *Session) {
		if panel, ok := actionPanels[reply.Action]; ok {
			s.Panels.set(panel, true)
		}
	})
	if err != nil {
		return nil, err
	}

	return &ChatExchange{StudentMessage: studentMsg, Reply: reply}, nil
}

// TriggerQuickAction sends the shortcut's canned message. The shortcut opens its
// own panel immediately; the reply's action is not applied.
func (c *ChatService) TriggerQuickAction(sessionID, action string) (*ChatExchange, error) {
	var quick *QuickAction
	for i := range QuickActions {
		if QuickActions[i].Action == action {
			quick = &QuickActions[i]
			break
		}
	}
	if quick == nil {
		return nil, fmt.Errorf("%s: %w", action, ErrUnknownQuickAction)
	}

	var profile *models.Profile
	var studentID string
	err := c.sessions.WithSession(sessionID, func(s *Session) error {
		if quick.Opens != "" {
			s.Panels.set(quick.Opens, true)
		}
		profile, studentID = copyProfile(s.Profile), s.StudentID
		return nil
	})
	if err != nil {
		return nil, err
	}

	studentMsg, err := c.appendMessage(sessionID, studentID, quick.Message, models.SenderStudent)
	if err != nil {
		return nil, err
	}

	reply := GenerateResponse(quick.Message, profile)
	if err := c.deliverReply(sessionID, studentID, reply.Message, nil); err != nil {
		return nil, err
	}

	return &ChatExchange{StudentMessage: studentMsg, Reply: reply}, nil
}

// AddAIMessage appends an assistant message to the transcript right away
func (c *ChatService) AddAIMessage(sessionID, text string) (*models.ChatMessage, error) {
	_, studentID, err := c.sessionProfile(sessionID)
	if err != nil {
		return nil, err
	}
	return c.appendMessage(sessionID, studentID, text, models.SenderAI)
}

// Welcome greets the student after onboarding, unless the conversation has started
func (c *ChatService) Welcome(sessionID string) (*models.ChatMessage, error) {
	profile, studentID, err := c.sessionProfile(sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := c.store.GetChatMessagesBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	params := map[string]string{
		"greeting_name":      "",
		"preferred_course":   "exploring options",
		"preferred_location": "various locations",
	}
	if profile != nil {
		if profile.Name != "" {
			params["greeting_name"] = " " + profile.Name
		}
		if profile.PreferredCourse != "" {
			params["preferred_course"] = profile.PreferredCourse
		}
		if profile.PreferredLocation != "" {
			params["preferred_location"] = profile.PreferredLocation
		}
	}

	text, err := c.templates.Render("welcome", params)
	if err != nil {
		return nil, err
	}
	return c.appendMessage(sessionID, studentID, text, models.SenderAI)
}

// Transcript returns the session's messages in insertion order
func (c *ChatService) Transcript(sessionID string) ([]*models.ChatMessage, error) {
	if _, err := c.sessions.GetSession(sessionID); err != nil {
		return nil, err
	}
	return c.store.GetChatMessagesBySession(sessionID)
}

// ArchivedTranscript reads the session's messages from the transcript archive
func (c *ChatService) ArchivedTranscript(ctx context.Context, sessionID string) ([]*models.ChatMessage, error) {
	if c.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return c.archive.History(ctx, sessionID)
}

func (c *ChatService) sessionProfile(sessionID string) (*models.Profile, string, error) {
	var profile *models.Profile
	var studentID string
	err := c.sessions.WithSession(sessionID, func(s *Session) error {
		profile, studentID = copyProfile(s.Profile), s.StudentID
		return nil
	})
	return profile, studentID, err
}

func copyProfile(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

// deliverReply appends the assistant reply after the configured delay and then
// applies onDeliver to the session. With no delay it runs synchronously.
func (c *ChatService) deliverReply(sessionID, studentID, text string, onDeliver func(s *Session)) error {
	deliver := func() error {
		if _, err := c.appendMessage(sessionID, studentID, text, models.SenderAI); err != nil {
			return err
		}
		if onDeliver == nil {
			return nil
		}
		return c.sessions.WithSession(sessionID, func(s *Session) error {
			onDeliver(s)
			return nil
		})
	}

	if c.replyDelay <= 0 {
		return deliver()
	}

	time.AfterFunc(c.replyDelay, func() {
		if err := deliver(); err != nil {
			log.Printf("❌ Failed to deliver reply for session %s: %v", sessionID, err)
		}
	})
	return nil
}

func (c *ChatService) appendMessage(sessionID, studentID, text, sender string) (*models.ChatMessage, error) {
	msg, err := c.store.CreateChatMessage(&models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		StudentID: studentID,
		Message:   text,
		Sender:    sender,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("append %s message: %w", sender, err)
	}

	if c.archive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.archive.Archive(ctx, msg); err != nil {
			log.Printf("⚠️  Failed to archive message %s: %v", msg.ID, err)
		}
	}

	return msg, nil
}
