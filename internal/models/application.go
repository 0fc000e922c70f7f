package models

import (
	"sort"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/utils"
	"gorm.io/gorm"
)

// Application tracks a student's application to a college course
type Application struct {
	ID                 string          `json:"id" gorm:"primaryKey"`
	StudentID          string          `json:"student_id" gorm:"index"`
	CollegeID          string          `json:"college_id"`
	CourseID           string          `json:"course_id"`
	CollegeName        string          `json:"college_name"`
	CourseName         string          `json:"course_name"`
	Status             string          `json:"status"` // "Under Review", "Shortlisted", "Accepted", "Rejected"
	AppliedAt          time.Time       `json:"applied_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	NextSteps          string          `json:"next_steps,omitempty"`
	DocumentsSubmitted map[string]bool `json:"documents_submitted,omitempty" gorm:"serializer:json"`
}

// Application status constants
const (
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusShortlisted = "Shortlisted"
	ApplicationStatusAccepted    = "Accepted"
	ApplicationStatusRejected    = "Rejected"
)

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = utils.GenerateSecureID("APP")
	}
	if a.Status == "" {
		a.Status = ApplicationStatusUnderReview
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return nil
}

// PendingDocuments lists the checklist entries not yet submitted
func (a *Application) PendingDocuments() []string {
	var pending []string
	for doc, submitted := range a.DocumentsSubmitted {
		if !submitted {
			pending = append(pending, doc)
		}
	}
	sort.Strings(pending)
	return pending
}
