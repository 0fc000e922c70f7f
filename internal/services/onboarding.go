package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

// Onboarding step bounds
const (
	FirstOnboardingStep = 1
	LastOnboardingStep  = 4
)

// onboardingFields lists the profile fields collected on each step
var onboardingFields = map[int][]string{
	1: {"name", "email", "phone"},
	2: {"education_level"},
	3: {"preferred_course", "preferred_location"},
	4: {"budget_min", "budget_max"},
}

// EducationLevels are the options offered on step 2
var EducationLevels = []string{
	models.EducationTwelfth,
	models.EducationDiploma,
	models.EducationDegreeTransfer,
	models.EducationOther,
}

// OnboardingWizard is the four-step profile form. The step never leaves [1,4].
type OnboardingWizard struct {
	Step    int            `json:"step"`
	Profile models.Profile `json:"profile"`
}

// NewOnboardingWizard starts on step 1 with the default budget range
func NewOnboardingWizard() *OnboardingWizard {
	return &OnboardingWizard{
		Step: FirstOnboardingStep,
		Profile: models.Profile{
			BudgetMin: 0,
			BudgetMax: models.DefaultBudgetMax,
		},
	}
}

// Fields returns the field names shown on the current step
func (w *OnboardingWizard) Fields() []string {
	return onboardingFields[w.Step]
}

// Update sets a single profile field. Values are free text; budgets keep their
// leading integer ("12abc" is 12, "1.5" is 1) and anything else becomes 0.
func (w *OnboardingWizard) Update(field, value string) error {
	p := &w.Profile
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "education_level":
		p.EducationLevel = value
	case "preferred_course":
		p.PreferredCourse = value
	case "preferred_location":
		p.PreferredLocation = value
	case "budget_min":
		p.BudgetMin = parseBudget(value)
	case "budget_max":
		p.BudgetMax = parseBudget(value)
	default:
		return fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return nil
}

func parseBudget(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return n
}

// Next advances one step. On the last step it reports completion and returns
// the accumulated profile instead.
func (w *OnboardingWizard) Next() (completed bool, profile models.Profile) {
	if w.Step < LastOnboardingStep {
		w.Step++
		return false, models.Profile{}
	}
	return true, w.Profile
}

// Back returns to the previous step; it does nothing on step 1
func (w *OnboardingWizard) Back() {
	if w.Step > FirstOnboardingStep {
		w.Step--
	}
}

// BudgetRange renders the budget like the form does, e.g. "₹0.0L - ₹5.0L per year"
func (w *OnboardingWizard) BudgetRange() string {
	return fmt.Sprintf("₹%sL - ₹%sL per year", models.Lakhs(w.Profile.BudgetMin), models.Lakhs(w.Profile.BudgetMax))
}

// Onboarding errors
var (
	ErrOnboardingClosed = errors.New("onboarding already closed")
	ErrUnknownField     = errors.New("unknown onboarding field")
)

// OnboardingResult is the wizard state after a step change
type OnboardingResult struct {
	Wizard    OnboardingWizard `json:"wizard"`
	Completed bool             `json:"completed"`
	Student   *models.Student  `json:"student,omitempty"`
}

// OnboardingService drives the wizard stored on each session
type OnboardingService struct {
	store    storage.Store
	sessions *SessionManager
	chat     *ChatService
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(store storage.Store, sessions *SessionManager, chat *ChatService) *OnboardingService {
	return &OnboardingService{
		store:    store,
		sessions: sessions,
		chat:     chat,
	}
}

// withWizard runs fn on the session's wizard while onboarding is open
func (o *OnboardingService) withWizard(sessionID string, fn func(s *Session, w *OnboardingWizard) error) error {
	return o.sessions.WithSession(sessionID, func(s *Session) error {
		if !s.Panels.Onboarding || s.Onboarding == nil {
			return ErrOnboardingClosed
		}
		return fn(s, s.Onboarding)
	})
}

// Update sets profile fields on the wizard. Nothing is applied if any field is unknown.
func (o *OnboardingService) Update(sessionID string, fields map[string]string) (*OnboardingResult, error) {
	var result OnboardingResult
	err := o.withWizard(sessionID, func(s *Session, w *OnboardingWizard) error {
		draft := *w
		for field, value := range fields {
			if err := draft.Update(field, value); err != nil {
				return err
			}
		}
		*w = draft
		result.Wizard = *w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Back returns to the previous step
func (o *OnboardingService) Back(sessionID string) (*OnboardingResult, error) {
	var result OnboardingResult
	err := o.withWizard(sessionID, func(s *Session, w *OnboardingWizard) error {
		w.Back()
		result.Wizard = *w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Next advances the wizard. Submitting step 4 completes onboarding: the profile
// is stored on the session, a student record is created and the welcome
// message is sent.
func (o *OnboardingService) Next(sessionID string) (*OnboardingResult, error) {
	var result OnboardingResult
	var profile models.Profile
	err := o.withWizard(sessionID, func(s *Session, w *OnboardingWizard) error {
		result.Completed, profile = w.Next()
		result.Wizard = *w
		if result.Completed {
			stored := profile
			s.Profile = &stored
			s.Panels.Onboarding = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Completed {
		return &result, nil
	}

	student, err := o.store.CreateStudent(profile.ToStudent())
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	result.Student = student
	log.Printf("🎓 Onboarding completed for %s (%s)", student.Name, student.ID)

	err = o.sessions.WithSession(sessionID, func(s *Session) error {
		s.StudentID = student.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.chat.Welcome(sessionID); err != nil {
		return nil, err
	}
	return &result, nil
}

// Close skips onboarding without a profile and greets the student
func (o *OnboardingService) Close(sessionID string) error {
	err := o.sessions.WithSession(sessionID, func(s *Session) error {
		s.Panels.Onboarding = false
		return nil
	})
	if err != nil {
		return err
	}
	_, err = o.chat.Welcome(sessionID)
	return err
}
