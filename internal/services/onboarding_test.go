package services

import (
	"errors"
	"strings"
	"testing"
)

func TestOnboardingWizardDefaults(t *testing.T) {
	w := NewOnboardingWizard()
	if w.Step != 1 {
		t.Fatalf("expected step 1, got %d", w.Step)
	}
	if w.Profile.BudgetMin != 0 || w.Profile.BudgetMax != 500000 {
		t.Fatalf("unexpected default budget %d-%d", w.Profile.BudgetMin, w.Profile.BudgetMax)
	}
	if got := w.BudgetRange(); got != "₹0.0L - ₹5.0L per year" {
		t.Fatalf("BudgetRange = %q", got)
	}
}

func TestOnboardingStepStaysInBounds(t *testing.T) {
	w := NewOnboardingWizard()

	w.Back()
	if w.Step != 1 {
		t.Fatalf("Back on step 1 moved to %d", w.Step)
	}

	for i := 0; i < 3; i++ {
		if done, _ := w.Next(); done {
			t.Fatalf("completed early on step %d", w.Step)
		}
	}
	if w.Step != 4 {
		t.Fatalf("expected step 4, got %d", w.Step)
	}

	for i := 0; i < 3; i++ {
		done, _ := w.Next()
		if !done {
			t.Fatalf("Next on step 4 should complete")
		}
		if w.Step != 4 {
			t.Fatalf("Next on step 4 moved to %d", w.Step)
		}
	}

	for i := 0; i < 10; i++ {
		w.Back()
		if w.Step < 1 || w.Step > 4 {
			t.Fatalf("step out of bounds: %d", w.Step)
		}
	}
	if w.Step != 1 {
		t.Fatalf("expected to end on step 1, got %d", w.Step)
	}
}

func TestOnboardingCompletesWithAccumulatedProfile(t *testing.T) {
	w := NewOnboardingWizard()

	steps := []map[string]string{
		{"name": "Asha", "email": "asha@example.com", "phone": "+919876543210"},
		{"education_level": "12th"},
		{"preferred_course": "Computer Science", "preferred_location": "Chennai"},
		{"budget_min": "50000", "budget_max": "abc"},
	}
	var done bool
	for _, fields := range steps {
		for field, value := range fields {
			if err := w.Update(field, value); err != nil {
				t.Fatalf("Update(%s) failed: %v", field, err)
			}
		}
		done, _ = w.Next()
	}

	if !done {
		t.Fatalf("expected completion after step 4")
	}
	_, profile := w.Next()
	if profile.Name != "Asha" || profile.Email != "asha@example.com" || profile.Phone != "+919876543210" {
		t.Fatalf("step 1 answers lost: %+v", profile)
	}
	if profile.EducationLevel != "12th" || profile.PreferredCourse != "Computer Science" || profile.PreferredLocation != "Chennai" {
		t.Fatalf("step 2/3 answers lost: %+v", profile)
	}
	if profile.BudgetMin != 50000 || profile.BudgetMax != 0 {
		t.Fatalf("unexpected budget %d-%d", profile.BudgetMin, profile.BudgetMax)
	}
}

func TestOnboardingUnknownField(t *testing.T) {
	w := NewOnboardingWizard()
	if err := w.Update("favourite_colour", "blue"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestOnboardingFieldsPerStep(t *testing.T) {
	w := NewOnboardingWizard()
	if got := w.Fields(); len(got) != 3 || got[0] != "name" {
		t.Fatalf("unexpected step 1 fields %v", got)
	}
	w.Next()
	if got := w.Fields(); len(got) != 1 || got[0] != "education_level" {
		t.Fatalf("unexpected step 2 fields %v", got)
	}
}

func TestOnboardingServiceCompletes(t *testing.T) {
	env := newTestEnv(t)
	id := env.sessions.CreateSession().SessionID

	steps := []map[string]string{
		{"name": "Priya", "email": "priya@example.com", "phone": "+919800000001"},
		{"education_level": "12th"},
		{"preferred_course": "Engineering", "preferred_location": "Chennai"},
		{"budget_min": "100000", "budget_max": "lots"},
	}
	var result *OnboardingResult
	for i, fields := range steps {
		if _, err := env.onboarding.Update(id, fields); err != nil {
			t.Fatalf("step %d Update failed: %v", i+1, err)
		}
		var err error
		result, err = env.onboarding.Next(id)
		if err != nil {
			t.Fatalf("step %d Next failed: %v", i+1, err)
		}
		if last := i == len(steps)-1; result.Completed != last {
			t.Fatalf("step %d: completed = %v", i+1, result.Completed)
		}
	}

	if result.Student == nil || result.Student.ID == "" {
		t.Fatalf("expected a stored student, got %+v", result.Student)
	}
	if result.Student.BudgetMin != 100000 || result.Student.BudgetMax != 0 {
		t.Fatalf("unexpected budget %d-%d", result.Student.BudgetMin, result.Student.BudgetMax)
	}
	if _, err := env.store.GetStudent(result.Student.ID); err != nil {
		t.Fatalf("student not persisted: %v", err)
	}

	s, _ := env.sessions.GetSession(id)
	if s.Panels.Onboarding {
		t.Fatalf("onboarding panel should close on completion")
	}
	if s.StudentID != result.Student.ID || s.Profile == nil || s.Profile.Name != "Priya" {
		t.Fatalf("session not linked to the student: %+v", s)
	}

	msgs, _ := env.chat.Transcript(id)
	if len(msgs) != 1 {
		t.Fatalf("expected the welcome message, got %d messages", len(msgs))
	}
	welcome := msgs[0].Message
	if !strings.HasPrefix(welcome, "Hello Priya!") || !strings.Contains(welcome, "Engineering in Chennai") {
		t.Fatalf("unexpected welcome: %q", welcome)
	}
	if msgs[0].StudentID != result.Student.ID {
		t.Fatalf("welcome not attributed to the student")
	}

	if _, err := env.onboarding.Next(id); !errors.Is(err, ErrOnboardingClosed) {
		t.Fatalf("expected ErrOnboardingClosed after completion, got %v", err)
	}
}

func TestOnboardingServiceClose(t *testing.T) {
	env := newTestEnv(t)
	id := env.sessions.CreateSession().SessionID

	if err := env.onboarding.Close(id); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, _ := env.sessions.GetSession(id)
	if s.Panels.Onboarding || s.Profile != nil {
		t.Fatalf("skipping onboarding should leave no profile: %+v", s)
	}
	students, _ := env.store.GetAllStudents()
	if len(students) != 0 {
		t.Fatalf("skipping onboarding must not create a student")
	}
	msgs, _ := env.chat.Transcript(id)
	if len(msgs) != 1 || !strings.HasPrefix(msgs[0].Message, "Hello!") {
		t.Fatalf("expected an anonymous welcome, got %+v", msgs)
	}
}

func TestOnboardingServiceBackAndUnknownField(t *testing.T) {
	env := newTestEnv(t)
	id := env.sessions.CreateSession().SessionID

	if _, err := env.onboarding.Next(id); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	result, err := env.onboarding.Back(id)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if result.Wizard.Step != 1 {
		t.Fatalf("expected step 1, got %d", result.Wizard.Step)
	}

	if _, err := env.onboarding.Update(id, map[string]string{"shoe_size": "9"}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseBudgetKeepsLeadingInteger(t *testing.T) {
	cases := map[string]int{
		"250000":   250000,
		" 75000 ":  75000,
		"1.5":      1,
		"12abc":    12,
		"-300":     -300,
		"+40":      40,
		"abc":      0,
		"":         0,
		"₹100000":  0,
		"1,00,000": 1,
	}
	for input, want := range cases {
		if got := parseBudget(input); got != want {
			t.Fatalf("parseBudget(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestOnboardingServiceUpdateIsAllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	id := env.sessions.CreateSession().SessionID

	for i := 0; i < 20; i++ {
		_, err := env.onboarding.Update(id, map[string]string{"name": "Priya", "email": "p@example.com", "bogus": "x"})
		if !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	}

	s, _ := env.sessions.GetSession(id)
	if s.Onboarding.Profile.Name != "" || s.Onboarding.Profile.Email != "" {
		t.Fatalf("rejected update changed the wizard: %+v", s.Onboarding.Profile)
	}

	if _, err := env.onboarding.Update(id, map[string]string{"name": "Priya"}); err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	s, _ = env.sessions.GetSession(id)
	if s.Onboarding.Profile.Name != "Priya" {
		t.Fatalf("valid update not applied: %+v", s.Onboarding.Profile)
	}
}
