package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"gorm.io/gorm"
)

// DatabaseStore implements Store on top of gorm
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by an open gorm connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// AutoMigrate creates or updates the tables for every record kind
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.College{},
		&models.Course{},
		&models.Application{},
		&models.CounselingSession{},
		&models.ChatMessage{},
	)
}

// translate maps gorm errors onto the package sentinels
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func getByID[T any](db *gorm.DB, id, what string) (*T, error) {
	var row T
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translate(err, what+" "+id)
	}
	return &row, nil
}

func deleteByID[T any](db *gorm.DB, id, what string) error {
	result := db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, what+" "+id)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}

// save updates an existing row and reports ErrNotFound when nothing matched
func save(db *gorm.DB, row any, id, what string) error {
	result := db.Model(row).Where("id = ?", id).Select("*").Updates(row)
	if result.Error != nil {
		return translate(result.Error, what+" "+id)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}

// Student operations
func (d *DatabaseStore) CreateStudent(student *models.Student) (*models.Student, error) {
	if err := d.db.Create(student).Error; err != nil {
		return nil, translate(err, "create student")
	}
	return student, nil
}

func (d *DatabaseStore) GetStudent(id string) (*models.Student, error) {
	return getByID[models.Student](d.db, id, "student")
}

func (d *DatabaseStore) GetAllStudents() ([]*models.Student, error) {
	var students []*models.Student
	err := d.db.Order("created_at").Find(&students).Error
	return students, translate(err, "list students")
}

func (d *DatabaseStore) UpdateStudent(student *models.Student) error {
	return save(d.db.Omit("created_at"), student, student.ID, "student")
}

func (d *DatabaseStore) DeleteStudent(id string) error {
	return deleteByID[models.Student](d.db, id, "student")
}

// College operations
func (d *DatabaseStore) CreateCollege(college *models.College) (*models.College, error) {
	if err := d.db.Create(college).Error; err != nil {
		return nil, translate(err, "create college")
	}
	return college, nil
}

func (d *DatabaseStore) GetCollege(id string) (*models.College, error) {
	return getByID[models.College](d.db, id, "college")
}

func (d *DatabaseStore) GetAllColleges() ([]*models.College, error) {
	var colleges []*models.College
	err := d.db.Order("id").Find(&colleges).Error
	return colleges, translate(err, "list colleges")
}

func (d *DatabaseStore) UpdateCollege(college *models.College) error {
	return save(d.db, college, college.ID, "college")
}

func (d *DatabaseStore) DeleteCollege(id string) error {
	return deleteByID[models.College](d.db, id, "college")
}

// Course operations
func (d *DatabaseStore) CreateCourse(course *models.Course) (*models.Course, error) {
	if err := d.db.Create(course).Error; err != nil {
		return nil, translate(err, "create course")
	}
	return course, nil
}

func (d *DatabaseStore) GetCourse(id string) (*models.Course, error) {
	return getByID[models.Course](d.db, id, "course")
}

func (d *DatabaseStore) GetAllCourses() ([]*models.Course, error) {
	var courses []*models.Course
	err := d.db.Order("id").Find(&courses).Error
	return courses, translate(err, "list courses")
}

func (d *DatabaseStore) UpdateCourse(course *models.Course) error {
	return save(d.db, course, course.ID, "course")
}

func (d *DatabaseStore) DeleteCourse(id string) error {
	return deleteByID[models.Course](d.db, id, "course")
}

// Application operations
func (d *DatabaseStore) CreateApplication(app *models.Application) (*models.Application, error) {
	if err := d.db.Create(app).Error; err != nil {
		return nil, translate(err, "create application")
	}
	return app, nil
}

func (d *DatabaseStore) GetApplication(id string) (*models.Application, error) {
	return getByID[models.Application](d.db, id, "application")
}

func (d *DatabaseStore) GetAllApplications() ([]*models.Application, error) {
	var apps []*models.Application
	err := d.db.Order("id").Find(&apps).Error
	return apps, translate(err, "list applications")
}

// likeEscaper makes user input literal inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (d *DatabaseStore) SearchApplications(idSubstring string) ([]*models.Application, error) {
	var apps []*models.Application
	pattern := "%" + likeEscaper.Replace(strings.ToLower(idSubstring)) + "%"
	err := d.db.Where(`LOWER(id) LIKE ? ESCAPE '\'`, pattern).Order("id").Find(&apps).Error
	return apps, translate(err, "search applications")
}

func (d *DatabaseStore) UpdateApplication(app *models.Application) error {
	return save(d.db.Omit("applied_at"), app, app.ID, "application")
}

func (d *DatabaseStore) DeleteApplication(id string) error {
	return deleteByID[models.Application](d.db, id, "application")
}

// Counseling session operations
func (d *DatabaseStore) CreateCounselingSession(session *models.CounselingSession) (*models.CounselingSession, error) {
	if err := d.db.Create(session).Error; err != nil {
		return nil, translate(err, "create counseling session")
	}
	return session, nil
}

func (d *DatabaseStore) GetCounselingSession(id string) (*models.CounselingSession, error) {
	return getByID[models.CounselingSession](d.db, id, "counseling session")
}

func (d *DatabaseStore) GetAllCounselingSessions() ([]*models.CounselingSession, error) {
	var sessions []*models.CounselingSession
	err := d.db.Order("created_at").Find(&sessions).Error
	return sessions, translate(err, "list counseling sessions")
}

func (d *DatabaseStore) GetCounselingSessionsByStatus(status string) ([]*models.CounselingSession, error) {
	var sessions []*models.CounselingSession
	err := d.db.Where("status = ?", status).Order("created_at").Find(&sessions).Error
	return sessions, translate(err, "list counseling sessions by status")
}

// UpdateCounselingSession replaces the session. Reminder timestamps are never cleared.
func (d *DatabaseStore) UpdateCounselingSession(session *models.CounselingSession) error {
	return save(d.db.Omit(counselingOmits(session)...), session, session.ID, "counseling session")
}

// counselingOmits lists the columns an update must leave alone
func counselingOmits(session *models.CounselingSession) []string {
	omit := []string{"created_at"}
	if session.DayReminderSentAt == nil {
		omit = append(omit, "day_reminder_sent_at")
	}
	if session.HourReminderSentAt == nil {
		omit = append(omit, "hour_reminder_sent_at")
	}
	return omit
}

func (d *DatabaseStore) DeleteCounselingSession(id string) error {
	return deleteByID[models.CounselingSession](d.db, id, "counseling session")
}

// Chat message operations
func (d *DatabaseStore) CreateChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error) {
	if err := d.db.Create(msg).Error; err != nil {
		return nil, translate(err, "create chat message")
	}
	return msg, nil
}

func (d *DatabaseStore) GetChatMessagesBySession(sessionID string) ([]*models.ChatMessage, error) {
	var msgs []*models.ChatMessage
	err := d.db.Where("session_id = ?", sessionID).Order("created_at").Find(&msgs).Error
	return msgs, translate(err, "list chat messages")
}

func (d *DatabaseStore) GetChatMessagesByStudent(studentID string) ([]*models.ChatMessage, error) {
	var msgs []*models.ChatMessage
	err := d.db.Where("student_id = ?", studentID).Order("created_at").Find(&msgs).Error
	return msgs, translate(err, "list chat messages")
}
