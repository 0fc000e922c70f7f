package models

import (
	"strings"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/utils"
	"gorm.io/gorm"
)

// Student is a registered student as stored in the backing store
type Student struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"index"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone,omitempty"`
	EducationLevel    string    `json:"education_level,omitempty"`
	PreferredCourse   string    `json:"preferred_course,omitempty"`
	PreferredLocation string    `json:"preferred_location,omitempty"`
	BudgetMin         int       `json:"budget_min"`
	BudgetMax         int       `json:"budget_max"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate hook to auto-generate the student ID and normalize contact fields
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = utils.GenerateSecureID("STU")
	}
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	return nil
}

// Education levels offered by the onboarding form. The field itself is free text.
const (
	EducationTwelfth        = "12th"
	EducationDiploma        = "diploma"
	EducationDegreeTransfer = "degree_transfer"
	EducationOther          = "other"
)

// Profile holds the answers collected by the onboarding wizard
type Profile struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	EducationLevel    string `json:"education_level"`
	PreferredCourse   string `json:"preferred_course"`
	PreferredLocation string `json:"preferred_location"`
	BudgetMin         int    `json:"budget_min"`
	BudgetMax         int    `json:"budget_max"`
}

// DefaultBudgetMax is the upper budget bound before the student edits it
const DefaultBudgetMax = 500000

// ToStudent converts onboarding answers into a student record
func (p Profile) ToStudent() *Student {
	return &Student{
		Email:             p.Email,
		Name:              p.Name,
		Phone:             p.Phone,
		EducationLevel:    p.EducationLevel,
		PreferredCourse:   p.PreferredCourse,
		PreferredLocation: p.PreferredLocation,
		BudgetMin:         p.BudgetMin,
		BudgetMax:         p.BudgetMax,
	}
}
