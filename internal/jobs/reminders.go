package jobs

import (
	"log"
	"sync"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

// IST is the zone counseling slots are published in
var IST = time.FixedZone("IST", 5*60*60+30*60)

// ReminderJob sends WhatsApp reminders 24 hours and 1 hour before scheduled
// counseling sessions
type ReminderJob struct {
	store     storage.Store
	templates *services.TemplateService
	location  *time.Location
	interval  time.Duration

	mu        sync.Mutex
	isRunning bool
	stop      chan struct{}
}

// NewReminderJob creates a new reminder job scheduler
func NewReminderJob(store storage.Store, templates *services.TemplateService) *ReminderJob {
	return &ReminderJob{
		store:     store,
		templates: templates,
		location:  IST,
		interval:  5 * time.Minute,
	}
}

// Start runs the reminder check on a fixed interval until Stop
func (r *ReminderJob) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isRunning {
		log.Println("Reminder job already running")
		return
	}

	r.isRunning = true
	r.stop = make(chan struct{})
	go r.loop(r.stop)

	log.Printf("⏰ Session reminders scheduled every %v", r.interval)
}

// Stop halts the reminder loop
func (r *ReminderJob) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.isRunning {
		return
	}
	r.isRunning = false
	close(r.stop)
	log.Println("Stopping session reminders...")
}

func (r *ReminderJob) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			r.RunOnce(now)
		}
	}
}

// RunOnce sends every reminder that is due at now and returns how many were sent
func (r *ReminderJob) RunOnce(now time.Time) int {
	sessions, err := r.store.GetCounselingSessionsByStatus(models.SessionStatusScheduled)
	if err != nil {
		log.Printf("Error getting scheduled sessions for reminders: %v", err)
		return 0
	}

	sentCount := 0
	for _, session := range sessions {
		if session.StudentPhone == "" {
			continue
		}

		startsAt, err := session.StartsAt(r.location)
		if err != nil {
			log.Printf("Skipping session %s with unreadable slot: %v", session.ID, err)
			continue
		}
		until := startsAt.Sub(now)
		if until <= 0 {
			continue
		}

		var leadTime string
		switch {
		case until <= time.Hour && session.HourReminderSentAt == nil:
			leadTime = "1 hour"
		case until <= 24*time.Hour && until > time.Hour && session.DayReminderSentAt == nil:
			leadTime = "24 hours"
		default:
			continue
		}

		err = r.templates.SendTemplate(session.StudentPhone, "session_reminder", map[string]string{
			"lead_time": leadTime,
			"counselor": session.CounselorName,
			"date":      services.LongDate(session.SessionDate),
			"time":      session.SessionTime,
			"mode":      models.ModeLabel(session.Mode),
		})
		if err != nil {
			log.Printf("Failed to send %s reminder for session %s: %v", leadTime, session.ID, err)
			continue
		}

		sentAt := now
		if leadTime == "1 hour" {
			session.HourReminderSentAt = &sentAt
			if session.DayReminderSentAt == nil {
				session.DayReminderSentAt = &sentAt
			}
		} else {
			session.DayReminderSentAt = &sentAt
		}
		if err := r.store.UpdateCounselingSession(session); err != nil {
			log.Printf("Error marking reminder for session %s: %v", session.ID, err)
		}
		sentCount++
	}

	if sentCount > 0 {
		log.Printf("⏰ Sent %d session reminders", sentCount)
	}
	return sentCount
}
