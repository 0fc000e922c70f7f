package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

func TestTopCollegesListsFirstFive(t *testing.T) {
	env := newTestEnv(t)

	colleges, err := env.colleges.Top()
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(colleges) != TopCollegesLimit {
		t.Fatalf("expected %d colleges, got %d", TopCollegesLimit, len(colleges))
	}
	if colleges[0].ID != "COL001" || colleges[4].ID != "COL005" {
		t.Fatalf("expected catalog order, got %s..%s", colleges[0].ID, colleges[4].ID)
	}
}

func TestViewCollegeDetails(t *testing.T) {
	env := newTestEnv(t)
	id := env.newChattingSession(t)

	msg, err := env.colleges.ViewDetails(id, "COL002")
	if err != nil {
		t.Fatalf("ViewDetails failed: %v", err)
	}
	for _, want := range []string{"Christ University", "Bangalore, Karnataka", "Deemed University", "₹1.5L - ₹3.0L"} {
		if !strings.Contains(msg.Message, want) {
			t.Fatalf("details missing %q: %q", want, msg.Message)
		}
	}
}

func TestViewCollegeDetailsDefaultDescription(t *testing.T) {
	env := newTestEnv(t)
	id := env.newChattingSession(t)

	college, _ := env.store.GetCollege("COL005")
	college.Description = ""
	if err := env.store.UpdateCollege(college); err != nil {
		t.Fatalf("UpdateCollege failed: %v", err)
	}

	msg, err := env.colleges.ViewDetails(id, "COL005")
	if err != nil {
		t.Fatalf("ViewDetails failed: %v", err)
	}
	if !strings.Contains(msg.Message, "Premier educational institution") {
		t.Fatalf("expected default description: %q", msg.Message)
	}
}

func TestApplyToCollege(t *testing.T) {
	env := newTestEnv(t)
	id := env.newChattingSession(t)

	msg, err := env.colleges.Apply(id, "COL001")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !strings.Contains(msg.Message, "To apply to Anna University") {
		t.Fatalf("unexpected checklist: %q", msg.Message)
	}

	if _, err := env.colleges.Apply(id, "COL999"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
