package services

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAndGetSession(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	defer sm.Stop()

	created := sm.CreateSession()
	if created.SessionID == "" {
		t.Fatalf("expected session id")
	}
	if !created.Panels.Onboarding {
		t.Fatalf("new sessions should show onboarding")
	}

	got, err := sm.GetSession(created.SessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Onboarding == nil || got.Onboarding.Step != 1 {
		t.Fatalf("expected onboarding on step 1, got %+v", got.Onboarding)
	}
}

func TestGetSessionReturnsCopy(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	defer sm.Stop()

	created := sm.CreateSession()
	snapshot, _ := sm.GetSession(created.SessionID)
	snapshot.Onboarding.Step = 3
	snapshot.Panels.Booking = true

	again, _ := sm.GetSession(created.SessionID)
	if again.Onboarding.Step != 1 || again.Panels.Booking {
		t.Fatalf("snapshot mutation leaked into the session")
	}
}

func TestUnknownAndExpiredSessions(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	defer sm.Stop()

	if _, err := sm.GetSession("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	created := sm.CreateSession()
	sm.mu.Lock()
	sm.sessions[created.SessionID].ExpiresAt = time.Now().Add(-time.Second)
	sm.mu.Unlock()

	if _, err := sm.GetSession(created.SessionID); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if n := sm.removeExpired(time.Now()); n != 1 {
		t.Fatalf("expected 1 expired session removed, got %d", n)
	}
	if len(sm.GetActiveSessions()) != 0 {
		t.Fatalf("expected no active sessions")
	}
}

func TestExpireSession(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	defer sm.Stop()

	created := sm.CreateSession()
	if err := sm.ExpireSession(created.SessionID); err != nil {
		t.Fatalf("ExpireSession failed: %v", err)
	}
	if err := sm.ExpireSession(created.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSetPanel(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	defer sm.Stop()

	created := sm.CreateSession()
	if err := sm.SetPanel(created.SessionID, PanelBooking, true); err != nil {
		t.Fatalf("SetPanel failed: %v", err)
	}
	if err := sm.SetPanel(created.SessionID, PanelOnboarding, false); err != nil {
		t.Fatalf("SetPanel failed: %v", err)
	}
	got, _ := sm.GetSession(created.SessionID)
	if !got.Panels.Booking || got.Panels.Onboarding {
		t.Fatalf("unexpected panels %+v", got.Panels)
	}

	if err := sm.SetPanel(created.SessionID, Panel("sidebar"), true); !errors.Is(err, ErrUnknownPanel) {
		t.Fatalf("expected ErrUnknownPanel, got %v", err)
	}
}
