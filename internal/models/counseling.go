package models

import (
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/utils"
	"gorm.io/gorm"
)

// CounselingSession is a booked one-on-one session with a counselor
type CounselingSession struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	StudentID     string    `json:"student_id" gorm:"index"`
	StudentPhone  string    `json:"student_phone,omitempty"`
	CounselorName string    `json:"counselor_name"`
	SessionDate   string    `json:"session_date"` // YYYY-MM-DD
	SessionTime   string    `json:"session_time"` // "10:00 AM"
	Mode          string    `json:"mode"`
	MeetingLink   string    `json:"meeting_link,omitempty"`
	Status        string    `json:"status" gorm:"default:'scheduled'"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// Reminder tracking for the scheduled WhatsApp reminders
	DayReminderSentAt  *time.Time `json:"-"`
	HourReminderSentAt *time.Time `json:"-"`
}

// Session modes and statuses
const (
	ModeWhatsApp = "whatsapp"
	ModeZoom     = "zoom"
	ModePhone    = "phone"

	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// ValidMode reports whether mode is one of the three supported session modes
func ValidMode(mode string) bool {
	switch mode {
	case ModeWhatsApp, ModeZoom, ModePhone:
		return true
	}
	return false
}

// ModeLabel returns the human readable name of a session mode
func ModeLabel(mode string) string {
	switch mode {
	case ModeZoom:
		return "Zoom Video Call"
	case ModeWhatsApp:
		return "WhatsApp Call"
	default:
		return "Phone Call"
	}
}

func (s *CounselingSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = utils.GenerateSecureID("CS")
	}
	if s.Status == "" {
		s.Status = SessionStatusScheduled
	}
	return nil
}

// StartsAt parses the session date and time in the given location
func (s *CounselingSession) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 03:04 PM", s.SessionDate+" "+s.SessionTime, loc)
}
