package storage

import (
	"errors"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
)

// Errors returned by every Store implementation
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Store defines the interface for storage operations
type Store interface {
	// Student operations
	CreateStudent(student *models.Student) (*models.Student, error)
	GetStudent(id string) (*models.Student, error)
	GetAllStudents() ([]*models.Student, error)
	UpdateStudent(student *models.Student) error
	DeleteStudent(id string) error

	// College operations
	CreateCollege(college *models.College) (*models.College, error)
	GetCollege(id string) (*models.College, error)
	GetAllColleges() ([]*models.College, error)
	UpdateCollege(college *models.College) error
	DeleteCollege(id string) error

	// Course operations
	CreateCourse(course *models.Course) (*models.Course, error)
	GetCourse(id string) (*models.Course, error)
	GetAllCourses() ([]*models.Course, error)
	UpdateCourse(course *models.Course) error
	DeleteCourse(id string) error

	// Application operations
	CreateApplication(app *models.Application) (*models.Application, error)
	GetApplication(id string) (*models.Application, error)
	GetAllApplications() ([]*models.Application, error)
	SearchApplications(idSubstring string) ([]*models.Application, error)
	UpdateApplication(app *models.Application) error
	DeleteApplication(id string) error

	// Counseling session operations
	CreateCounselingSession(session *models.CounselingSession) (*models.CounselingSession, error)
	GetCounselingSession(id string) (*models.CounselingSession, error)
	GetAllCounselingSessions() ([]*models.CounselingSession, error)
	GetCounselingSessionsByStatus(status string) ([]*models.CounselingSession, error)
	UpdateCounselingSession(session *models.CounselingSession) error
	DeleteCounselingSession(id string) error

	// Chat message operations (append-only)
	CreateChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error)
	GetChatMessagesBySession(sessionID string) ([]*models.ChatMessage, error)
	GetChatMessagesByStudent(studentID string) ([]*models.ChatMessage, error)
}

var (
	_ Store             = (*MemoryStore)(nil)
	_ Store             = (*DatabaseStore)(nil)
	_ TranscriptArchive = (*MongoTranscriptArchive)(nil)
)
