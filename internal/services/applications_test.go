package services

import (
	"testing"
)

func TestApplicationSearchIgnoresEmail(t *testing.T) {
	env := newTestEnv(t)

	apps, err := env.applications.Search(ApplicationLookup{ApplicationID: "app2", Email: "someone@else.com"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "APP20451" {
		t.Fatalf("expected APP20451, got %+v", apps)
	}

	all, _ := env.applications.Search(ApplicationLookup{})
	if len(all) != 4 {
		t.Fatalf("empty query should list every application, got %d", len(all))
	}

	none, _ := env.applications.Search(ApplicationLookup{ApplicationID: "XYZ"})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestApplicationPanel(t *testing.T) {
	env := newTestEnv(t)
	id := env.newChattingSession(t)

	if err := env.applications.Open(id); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s, _ := env.sessions.GetSession(id)
	if !s.Panels.Application {
		t.Fatalf("application panel should be open")
	}
	env.applications.Close(id)
	s, _ = env.sessions.GetSession(id)
	if s.Panels.Application {
		t.Fatalf("application panel should be closed")
	}
}

func TestStatusTone(t *testing.T) {
	cases := map[string]string{
		"Accepted":     "success",
		"shortlisted":  "info",
		"Under Review": "warning",
		"REJECTED":     "danger",
		"Waitlisted":   "default",
	}
	for status, want := range cases {
		if got := StatusTone(status); got != want {
			t.Fatalf("StatusTone(%q) = %q, want %q", status, got, want)
		}
	}
}
