package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/google/uuid"
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Panels tracks which auxiliary panels are open for a visitor
type Panels struct {
	Onboarding  bool `json:"onboarding"`
	Booking     bool `json:"booking"`
	Application bool `json:"application"`
	Colleges    bool `json:"colleges"`
}

// Panel names an auxiliary panel
type Panel string

const (
	PanelOnboarding  Panel = "onboarding"
	PanelBooking     Panel = "booking"
	PanelApplication Panel = "application"
	PanelColleges    Panel = "colleges"
)

// ErrUnknownPanel is returned for a panel name outside the Panel constants
var ErrUnknownPanel = errors.New("unknown panel")

func (p *Panels) set(panel Panel, open bool) error {
	switch panel {
	case PanelOnboarding:
		p.Onboarding = open
	case PanelBooking:
		p.Booking = open
	case PanelApplication:
		p.Application = open
	case PanelColleges:
		p.Colleges = open
	default:
		return ErrUnknownPanel
	}
	return nil
}

// Session is the per-visitor UI state: profile, open panels and forms
type Session struct {
	SessionID  string            `json:"session_id"`
	StudentID  string            `json:"student_id,omitempty"`
	Profile    *models.Profile   `json:"profile,omitempty"`
	Onboarding *OnboardingWizard `json:"onboarding,omitempty"`
	Booking    *BookingForm      `json:"booking,omitempty"`
	Panels     Panels            `json:"panels"`
	CreatedAt  time.Time         `json:"created_at"`
	LastActive time.Time         `json:"last_active"`
	ExpiresAt  time.Time         `json:"expires_at"`
	IsActive   bool              `json:"is_active"`
}

// SessionManager manages visitor sessions
type SessionManager struct {
	sessions   map[string]*Session
	mu         sync.RWMutex
	sessionTTL time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewSessionManager creates a new session manager and starts its cleanup routine
func NewSessionManager(sessionTTL time.Duration) *SessionManager {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	sm := &SessionManager{
		sessions:   make(map[string]*Session),
		sessionTTL: sessionTTL,
		stop:       make(chan struct{}),
	}

	go sm.cleanupExpiredSessions(5 * time.Minute)

	return sm
}

// CreateSession opens a new session with the onboarding wizard showing
func (sm *SessionManager) CreateSession() Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	session := &Session{
		SessionID:  uuid.NewString(),
		Onboarding: NewOnboardingWizard(),
		Booking:    NewBookingForm(),
		Panels:     Panels{Onboarding: true},
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(sm.sessionTTL),
		IsActive:   true,
	}

	sm.sessions[session.SessionID] = session
	log.Printf("Session created: %s", session.SessionID)

	return session.snapshot()
}

// GetSession returns a snapshot of an active session
func (sm *SessionManager) GetSession(sessionID string) (Session, error) {
	var snapshot Session
	err := sm.WithSession(sessionID, func(s *Session) error {
		snapshot = s.snapshot()
		return nil
	})
	return snapshot, err
}

// WithSession runs fn with exclusive access to the session and refreshes its TTL
func (sm *SessionManager) WithSession(sessionID string, fn func(s *Session) error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		return ErrSessionExpired
	}

	session.LastActive = time.Now()
	session.ExpiresAt = session.LastActive.Add(sm.sessionTTL)

	return fn(session)
}

// SetPanel opens or closes one panel of a session
func (sm *SessionManager) SetPanel(sessionID string, panel Panel, open bool) error {
	return sm.WithSession(sessionID, func(s *Session) error {
		return s.Panels.set(panel, open)
	})
}

// ExpireSession manually expires a session
func (sm *SessionManager) ExpireSession(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}

	session.IsActive = false
	delete(sm.sessions, sessionID)

	log.Printf("Session expired: %s", sessionID)
	return nil
}

// GetActiveSessions returns snapshots of all active sessions (for monitoring)
func (sm *SessionManager) GetActiveSessions() []Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	now := time.Now()
	active := []Session{}
	for _, session := range sm.sessions {
		if session.IsActive && now.Before(session.ExpiresAt) {
			active = append(active, session.snapshot())
		}
	}
	return active
}

// Stop ends the cleanup routine
func (sm *SessionManager) Stop() {
	sm.stopOnce.Do(func() { close(sm.stop) })
}

// removeExpired drops sessions past their expiry and returns how many it removed
func (sm *SessionManager) removeExpired(now time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for id, session := range sm.sessions {
		if now.After(session.ExpiresAt) {
			session.IsActive = false
			delete(sm.sessions, id)
			removed++
		}
	}
	return removed
}

// cleanupExpiredSessions runs periodically to clean up expired sessions
func (sm *SessionManager) cleanupExpiredSessions(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-sm.stop:
			return
		case now := <-ticker.C:
			if n := sm.removeExpired(now); n > 0 {
				log.Printf("Cleaned up %d expired sessions", n)
			}
		}
	}
}

// snapshot copies the session so callers can read it without holding the lock
func (s *Session) snapshot() Session {
	out := *s
	if s.Profile != nil {
		profile := *s.Profile
		out.Profile = &profile
	}
	if s.Onboarding != nil {
		wizard := *s.Onboarding
		out.Onboarding = &wizard
	}
	if s.Booking != nil {
		form := *s.Booking
		out.Booking = &form
	}
	return out
}
