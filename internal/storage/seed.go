package storage

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
)

// MockColleges is the static college catalog shown in the colleges panel
var MockColleges = []models.College{
	{
		ID: "COL001", Name: "Anna University", Type: "Government",
		LocationCity: "Chennai", LocationState: "Tamil Nadu",
		FeesMin: 50000, FeesMax: 150000,
		Description:         "One of India's leading technical universities with strong industry ties.",
		Facilities:          []string{"Library", "Hostel", "Labs", "Sports Complex"},
		Courses:             []string{"B.E. Computer Science", "B.E. ECE", "B.E. Mechanical"},
		ApplicationDeadline: "2025-11-30",
		Website:             "https://www.annauniv.edu",
	},
	{
		ID: "COL002", Name: "Christ University", Type: "Deemed University",
		LocationCity: "Bangalore", LocationState: "Karnataka",
		FeesMin: 150000, FeesMax: 300000,
		Description:         "Multi-disciplinary campus known for commerce, management and psychology.",
		Facilities:          []string{"Library", "Hostel", "Auditorium", "Wi-Fi Campus"},
		Courses:             []string{"B.Com", "BBA", "BA Psychology"},
		ApplicationDeadline: "2025-12-15",
		Website:             "https://christuniversity.in",
	},
	{
		ID: "COL003", Name: "SRM Institute of Science and Technology", Type: "Private",
		LocationCity: "Chennai", LocationState: "Tamil Nadu",
		FeesMin: 250000, FeesMax: 450000,
		Description:         "Large private university with engineering, medical and management schools.",
		Facilities:          []string{"Hostel", "Hospital", "Labs", "Placement Cell"},
		Courses:             []string{"B.Tech CSE", "B.Tech AI", "MBBS"},
		ApplicationDeadline: "2026-01-10",
		Website:             "https://www.srmist.edu.in",
	},
	{
		ID: "COL004", Name: "Manipal Academy of Higher Education", Type: "Deemed University",
		LocationCity: "Manipal", LocationState: "Karnataka",
		FeesMin: 300000, FeesMax: 600000,
		Description:         "Residential campus with renowned health sciences and engineering programs.",
		Facilities:          []string{"Hostel", "Hospital", "Sports Complex", "Wi-Fi Campus"},
		Courses:             []string{"MBBS", "B.Pharm", "B.Tech Biotechnology"},
		ApplicationDeadline: "2025-12-31",
		Website:             "https://manipal.edu",
	},
	{
		ID: "COL005", Name: "Loyola College", Type: "Private",
		LocationCity: "Chennai", LocationState: "Tamil Nadu",
		FeesMin: 40000, FeesMax: 120000,
		Description:         "Autonomous arts and science college with a long academic tradition.",
		Facilities:          []string{"Library", "Hostel", "Auditorium"},
		Courses:             []string{"B.Sc Physics", "B.Sc Chemistry", "BA Literature"},
		ApplicationDeadline: "2025-11-15",
		Website:             "https://www.loyolacollege.edu",
	},
	{
		ID: "COL006", Name: "National Institute of Design", Type: "Government",
		LocationCity: "Ahmedabad", LocationState: "Gujarat",
		FeesMin: 200000, FeesMax: 350000,
		Description:         "Premier design school for product, communication and textile design.",
		Facilities:          []string{"Studios", "Workshops", "Hostel"},
		Courses:             []string{"B.Des Product Design", "B.Des Communication Design"},
		ApplicationDeadline: "2025-10-31",
		Website:             "https://www.nid.edu",
	},
}

// MockCourses is the static course catalog
var MockCourses = []models.Course{
	{ID: "CRS001", Name: "B.Tech Computer Science", Category: "Engineering & Technology", DurationYears: 4,
		CareerOptions: []string{"Software Engineer", "Data Scientist"}, AverageSalaryMin: 400000, AverageSalaryMax: 800000},
	{ID: "CRS002", Name: "MBBS", Category: "Medical & Healthcare", DurationYears: 5.5,
		CareerOptions: []string{"Doctor", "Surgeon"}, AverageSalaryMin: 600000, AverageSalaryMax: 1500000},
	{ID: "CRS003", Name: "BA Psychology", Category: "Arts & Humanities", DurationYears: 3,
		CareerOptions: []string{"Counselor", "HR Specialist"}, AverageSalaryMin: 300000, AverageSalaryMax: 600000},
	{ID: "CRS004", Name: "B.Com", Category: "Commerce & Business", DurationYears: 3,
		CareerOptions: []string{"Accountant", "Financial Analyst"}, AverageSalaryMin: 300000, AverageSalaryMax: 600000},
	{ID: "CRS005", Name: "B.Sc Biotechnology", Category: "Science", DurationYears: 3,
		CareerOptions: []string{"Research Associate", "Lab Scientist"}, AverageSalaryMin: 300000, AverageSalaryMax: 550000},
}

// MockApplications is the static application list used by the status lookup
var MockApplications = []models.Application{
	{
		ID: "APP11234", StudentID: "STU00001", CollegeID: "COL001", CourseID: "CRS001",
		CollegeName: "Anna University", CourseName: "B.E. Computer Science",
		Status:    models.ApplicationStatusUnderReview,
		AppliedAt: time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
		NextSteps: "Upload your transfer certificate to complete verification.",
		DocumentsSubmitted: map[string]bool{
			"mark_sheets": true, "transfer_certificate": false, "id_proof": true, "photos": true,
		},
	},
	{
		ID: "APP12567", StudentID: "STU00001", CollegeID: "COL002", CourseID: "CRS004",
		CollegeName: "Christ University", CourseName: "B.Com",
		Status:    models.ApplicationStatusShortlisted,
		AppliedAt: time.Date(2025, 9, 12, 14, 30, 0, 0, time.UTC),
		NextSteps: "Attend the personal interview on 25 October 2025.",
		DocumentsSubmitted: map[string]bool{
			"mark_sheets": true, "transfer_certificate": true, "id_proof": true, "photos": true,
		},
	},
	{
		ID: "APP13890", StudentID: "STU00002", CollegeID: "COL004", CourseID: "CRS002",
		CollegeName: "Manipal Academy of Higher Education", CourseName: "MBBS",
		Status:    models.ApplicationStatusAccepted,
		AppliedAt: time.Date(2025, 8, 30, 9, 15, 0, 0, time.UTC),
		NextSteps: "Pay the admission fee before 1 November 2025 to confirm your seat.",
		DocumentsSubmitted: map[string]bool{
			"mark_sheets": true, "transfer_certificate": true, "id_proof": true, "photos": true,
		},
	},
	{
		ID: "APP20451", StudentID: "STU00003", CollegeID: "COL006", CourseID: "CRS003",
		CollegeName: "National Institute of Design", CourseName: "B.Des Product Design",
		Status:    models.ApplicationStatusRejected,
		AppliedAt: time.Date(2025, 8, 18, 16, 45, 0, 0, time.UTC),
		NextSteps: "Book a counseling session to explore alternative design schools.",
		DocumentsSubmitted: map[string]bool{
			"mark_sheets": true, "transfer_certificate": false, "id_proof": true, "photos": false,
		},
	},
}

// SeedCatalog inserts the mock catalog records that are not already present
func SeedCatalog(store Store) error {
	created := 0

	for i := range MockColleges {
		college := MockColleges[i]
		college.Facilities = append([]string(nil), college.Facilities...)
		college.Courses = append([]string(nil), college.Courses...)
		ok, err := seedOne(func() error { _, err := store.GetCollege(college.ID); return err },
			func() error { _, err := store.CreateCollege(&college); return err })
		if err != nil {
			return fmt.Errorf("seed college %s: %w", college.ID, err)
		}
		if ok {
			created++
		}
	}

	for i := range MockCourses {
		course := MockCourses[i]
		course.CareerOptions = append([]string(nil), course.CareerOptions...)
		ok, err := seedOne(func() error { _, err := store.GetCourse(course.ID); return err },
			func() error { _, err := store.CreateCourse(&course); return err })
		if err != nil {
			return fmt.Errorf("seed course %s: %w", course.ID, err)
		}
		if ok {
			created++
		}
	}

	for i := range MockApplications {
		app := MockApplications[i]
		docs := make(map[string]bool, len(app.DocumentsSubmitted))
		for doc, submitted := range app.DocumentsSubmitted {
			docs[doc] = submitted
		}
		app.DocumentsSubmitted = docs
		ok, err := seedOne(func() error { _, err := store.GetApplication(app.ID); return err },
			func() error { _, err := store.CreateApplication(&app); return err })
		if err != nil {
			return fmt.Errorf("seed application %s: %w", app.ID, err)
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		log.Printf("🌱 Seeded %d catalog records", created)
	}
	return nil
}

func seedOne(lookup, create func() error) (bool, error) {
	err := lookup()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	return true, create()
}
