package models

import (
	"fmt"

	"github.com/Ananth-NQI/eduguide-backend/internal/utils"
	"gorm.io/gorm"
)

// College is a read-mostly catalog entry shown in the colleges panel
type College struct {
	ID                  string   `json:"id" gorm:"primaryKey"`
	Name                string   `json:"name" gorm:"not null"`
	Type                string   `json:"type"` // "Private", "Government", "Deemed University"
	LocationCity        string   `json:"location_city"`
	LocationState       string   `json:"location_state"`
	FeesMin             int      `json:"fees_min"`
	FeesMax             int      `json:"fees_max"`
	Description         string   `json:"description,omitempty"`
	Facilities          []string `json:"facilities,omitempty" gorm:"serializer:json"`
	Courses             []string `json:"courses,omitempty" gorm:"serializer:json"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"` // YYYY-MM-DD
	Website             string   `json:"website,omitempty"`
}

func (c *College) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.GenerateSecureID("COL")
	}
	return nil
}

// FeeBand renders the annual fee range in lakhs, e.g. "₹1.5L - ₹2.5L"
func (c *College) FeeBand() string {
	return fmt.Sprintf("₹%sL - ₹%sL", Lakhs(c.FeesMin), Lakhs(c.FeesMax))
}

// Lakhs formats a rupee amount in lakhs with one decimal
func Lakhs(amount int) string {
	return fmt.Sprintf("%.1f", float64(amount)/100000)
}

// Course is a course catalog entry
type Course struct {
	ID               string   `json:"id" gorm:"primaryKey"`
	Name             string   `json:"name" gorm:"not null"`
	Category         string   `json:"category"`
	DurationYears    float64  `json:"duration_years"`
	Description      string   `json:"description,omitempty"`
	CareerOptions    []string `json:"career_options,omitempty" gorm:"serializer:json"`
	AverageSalaryMin int      `json:"average_salary_min,omitempty"`
	AverageSalaryMax int      `json:"average_salary_max,omitempty"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.GenerateSecureID("CRS")
	}
	return nil
}
