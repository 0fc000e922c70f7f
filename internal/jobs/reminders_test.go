package jobs

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

type capturedMessage struct {
	to, body string
}

type captureNotifier struct {
	mu   sync.Mutex
	sent []capturedMessage
}

func (n *captureNotifier) SendWhatsAppMessage(to, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, capturedMessage{to, message})
	return nil
}

func (n *captureNotifier) messages() []capturedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]capturedMessage(nil), n.sent...)
}

func newReminderFixture(t *testing.T) (*ReminderJob, *storage.MemoryStore, *captureNotifier) {
	t.Helper()
	store := storage.NewMemoryStore()
	notifier := &captureNotifier{}
	job := NewReminderJob(store, services.NewTemplateService(notifier))

	_, err := store.CreateCounselingSession(&models.CounselingSession{
		StudentID:     "STU00001",
		StudentPhone:  "+919800000001",
		CounselorName: services.DefaultCounselor,
		SessionDate:   "2025-10-13",
		SessionTime:   "11:00 AM",
		Mode:          models.ModeZoom,
		Status:        models.SessionStatusScheduled,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	_, err = store.CreateCounselingSession(&models.CounselingSession{
		SessionDate: "2025-10-13",
		SessionTime: "11:00 AM",
		Mode:        models.ModePhone,
		Status:      models.SessionStatusScheduled,
	})
	if err != nil {
		t.Fatalf("create session without phone: %v", err)
	}
	return job, store, notifier
}

func TestReminderJobSendsDayThenHour(t *testing.T) {
	job, _, notifier := newReminderFixture(t)
	start := time.Date(2025, 10, 13, 11, 0, 0, 0, IST)

	if n := job.RunOnce(start.Add(-48 * time.Hour)); n != 0 {
		t.Fatalf("two days out should send nothing, sent %d", n)
	}

	if n := job.RunOnce(start.Add(-20 * time.Hour)); n != 1 {
		t.Fatalf("expected the 24 hour reminder, sent %d", n)
	}
	if n := job.RunOnce(start.Add(-19 * time.Hour)); n != 0 {
		t.Fatalf("24 hour reminder must not repeat, sent %d", n)
	}

	if n := job.RunOnce(start.Add(-30 * time.Minute)); n != 1 {
		t.Fatalf("expected the 1 hour reminder, sent %d", n)
	}
	if n := job.RunOnce(start.Add(-10 * time.Minute)); n != 0 {
		t.Fatalf("1 hour reminder must not repeat, sent %d", n)
	}

	if n := job.RunOnce(start.Add(time.Minute)); n != 0 {
		t.Fatalf("started sessions get no reminders, sent %d", n)
	}

	sent := notifier.messages()
	if len(sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sent))
	}
	if sent[0].to != "+919800000001" || !strings.Contains(sent[0].body, "starts in 24 hours") {
		t.Fatalf("unexpected day reminder %+v", sent[0])
	}
	if !strings.Contains(sent[1].body, "starts in 1 hour") || !strings.Contains(sent[1].body, "Monday, October 13, 2025 at 11:00 AM") {
		t.Fatalf("unexpected hour reminder %+v", sent[1])
	}
}

func TestReminderJobLateBookingGetsOnlyHourReminder(t *testing.T) {
	job, store, notifier := newReminderFixture(t)
	start := time.Date(2025, 10, 13, 11, 0, 0, 0, IST)

	if n := job.RunOnce(start.Add(-45 * time.Minute)); n != 1 {
		t.Fatalf("expected the 1 hour reminder, sent %d", n)
	}
	if n := job.RunOnce(start.Add(-40 * time.Minute)); n != 0 {
		t.Fatalf("no further reminders expected, sent %d", n)
	}
	if len(notifier.messages()) != 1 {
		t.Fatalf("expected exactly one message")
	}

	sessions, _ := store.GetCounselingSessionsByStatus(models.SessionStatusScheduled)
	for _, s := range sessions {
		if s.StudentPhone != "" && (s.HourReminderSentAt == nil || s.DayReminderSentAt == nil) {
			t.Fatalf("reminder timestamps not recorded: %+v", s)
		}
	}
}

func TestReminderJobStartStop(t *testing.T) {
	job, _, _ := newReminderFixture(t)
	job.Start()
	job.Start()
	job.Stop()
	job.Stop()
}

func TestReminderJobSurvivesRecordUpdate(t *testing.T) {
	job, store, notifier := newReminderFixture(t)
	start := time.Date(2025, 10, 13, 11, 0, 0, 0, IST)

	if n := job.RunOnce(start.Add(-30 * time.Minute)); n != 1 {
		t.Fatalf("expected the 1 hour reminder, sent %d", n)
	}

	sessions, _ := store.GetCounselingSessionsByStatus(models.SessionStatusScheduled)
	for _, s := range sessions {
		edited := *s
		edited.DayReminderSentAt, edited.HourReminderSentAt = nil, nil
		edited.Notes = "bring mark sheets"
		if err := store.UpdateCounselingSession(&edited); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	if n := job.RunOnce(start.Add(-25 * time.Minute)); n != 0 {
		t.Fatalf("reminder repeated after a record update, sent %d", n)
	}
	if len(notifier.messages()) != 1 {
		t.Fatalf("expected exactly one message, got %d", len(notifier.messages()))
	}
}
