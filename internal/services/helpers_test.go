package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

type sentMessage struct {
	To   string
	Body string
}

// recordingNotifier captures outgoing WhatsApp messages
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (r *recordingNotifier) SendWhatsAppMessage(to string, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentMessage{To: to, Body: message})
	return nil
}

func (r *recordingNotifier) Sent() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMessage(nil), r.sent...)
}

// testEnv wires every service over a seeded memory store with synchronous replies
type testEnv struct {
	store        *storage.MemoryStore
	sessions     *SessionManager
	notifier     *recordingNotifier
	templates    *TemplateService
	chat         *ChatService
	onboarding   *OnboardingService
	booking      *BookingService
	applications *ApplicationService
	colleges     *CollegeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	if err := storage.SeedCatalog(store); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	sessions := NewSessionManager(time.Minute)
	t.Cleanup(sessions.Stop)

	notifier := &recordingNotifier{}
	templates := NewTemplateService(notifier)
	chat := NewChatService(store, sessions, templates, nil, 0)

	return &testEnv{
		store:        store,
		sessions:     sessions,
		notifier:     notifier,
		templates:    templates,
		chat:         chat,
		onboarding:   NewOnboardingService(store, sessions, chat),
		booking:      NewBookingService(store, sessions, chat, templates),
		applications: NewApplicationService(store, sessions),
		colleges:     NewCollegeService(store, sessions, chat, templates),
	}
}

// newChattingSession returns a session with onboarding skipped and an empty transcript
func (e *testEnv) newChattingSession(t *testing.T) string {
	t.Helper()
	id := e.sessions.CreateSession().SessionID
	if err := e.sessions.SetPanel(id, PanelOnboarding, false); err != nil {
		t.Fatalf("close onboarding: %v", err)
	}
	return id
}
