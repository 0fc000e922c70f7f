package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
)

// table is an insertion-ordered, mutex guarded map of records
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]*T
	order   []string
	counter int
	prefix  string
	id      func(*T) *string
}

func newTable[T any](prefix string, id func(*T) *string) *table[T] {
	return &table[T]{
		rows:   make(map[string]*T),
		prefix: prefix,
		id:     id,
	}
}

func (t *table[T]) create(row *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(row)
	if *id == "" {
		t.counter++
		*id = fmt.Sprintf("%s%05d", t.prefix, t.counter)
	}
	if _, exists := t.rows[*id]; exists {
		return nil, fmt.Errorf("%s %s: %w", t.prefix, *id, ErrConflict)
	}

	t.rows[*id] = row
	t.order = append(t.order, *id)
	return row, nil
}

func (t *table[T]) get(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, exists := t.rows[id]
	if !exists {
		return nil, fmt.Errorf("%s %s: %w", t.prefix, id, ErrNotFound)
	}
	return row, nil
}

func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (t *table[T]) update(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := *t.id(row)
	if _, exists := t.rows[id]; !exists {
		return fmt.Errorf("%s %s: %w", t.prefix, id, ErrNotFound)
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		return fmt.Errorf("%s %s: %w", t.prefix, id, ErrNotFound)
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryStore holds all data in memory for local development and tests
type MemoryStore struct {
	students     *table[models.Student]
	colleges     *table[models.College]
	courses      *table[models.Course]
	applications *table[models.Application]
	sessions     *table[models.CounselingSession]
	messages     *table[models.ChatMessage]
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		students:     newTable("STU", func(s *models.Student) *string { return &s.ID }),
		colleges:     newTable("COL", func(c *models.College) *string { return &c.ID }),
		courses:      newTable("CRS", func(c *models.Course) *string { return &c.ID }),
		applications: newTable("APP", func(a *models.Application) *string { return &a.ID }),
		sessions:     newTable("CS", func(s *models.CounselingSession) *string { return &s.ID }),
		messages:     newTable("MSG", func(m *models.ChatMessage) *string { return &m.ID }),
	}
}

// Student operations
func (m *MemoryStore) CreateStudent(student *models.Student) (*models.Student, error) {
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now
	return m.students.create(student)
}

func (m *MemoryStore) GetStudent(id string) (*models.Student, error) {
	return m.students.get(id)
}

func (m *MemoryStore) GetAllStudents() ([]*models.Student, error) {
	return m.students.filter(nil), nil
}

func (m *MemoryStore) UpdateStudent(student *models.Student) error {
	existing, err := m.students.get(student.ID)
	if err != nil {
		return err
	}
	student.CreatedAt = existing.CreatedAt
	student.UpdatedAt = time.Now()
	return m.students.update(student)
}

func (m *MemoryStore) DeleteStudent(id string) error {
	return m.students.delete(id)
}

// College operations
func (m *MemoryStore) CreateCollege(college *models.College) (*models.College, error) {
	return m.colleges.create(college)
}

func (m *MemoryStore) GetCollege(id string) (*models.College, error) {
	return m.colleges.get(id)
}

func (m *MemoryStore) GetAllColleges() ([]*models.College, error) {
	return m.colleges.filter(nil), nil
}

func (m *MemoryStore) UpdateCollege(college *models.College) error {
	return m.colleges.update(college)
}

func (m *MemoryStore) DeleteCollege(id string) error {
	return m.colleges.delete(id)
}

// Course operations
func (m *MemoryStore) CreateCourse(course *models.Course) (*models.Course, error) {
	return m.courses.create(course)
}

func (m *MemoryStore) GetCourse(id string) (*models.Course, error) {
	return m.courses.get(id)
}

func (m *MemoryStore) GetAllCourses() ([]*models.Course, error) {
	return m.courses.filter(nil), nil
}

func (m *MemoryStore) UpdateCourse(course *models.Course) error {
	return m.courses.update(course)
}

func (m *MemoryStore) DeleteCourse(id string) error {
	return m.courses.delete(id)
}

// Application operations
func (m *MemoryStore) CreateApplication(app *models.Application) (*models.Application, error) {
	now := time.Now()
	if app.AppliedAt.IsZero() {
		app.AppliedAt = now
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusUnderReview
	}
	app.UpdatedAt = now
	return m.applications.create(app)
}

func (m *MemoryStore) GetApplication(id string) (*models.Application, error) {
	return m.applications.get(id)
}

func (m *MemoryStore) GetAllApplications() ([]*models.Application, error) {
	return m.applications.filter(nil), nil
}

// SearchApplications matches the ID substring case-insensitively, in insertion order
func (m *MemoryStore) SearchApplications(idSubstring string) ([]*models.Application, error) {
	needle := strings.ToLower(idSubstring)
	return m.applications.filter(func(a *models.Application) bool {
		return strings.Contains(strings.ToLower(a.ID), needle)
	}), nil
}

func (m *MemoryStore) UpdateApplication(app *models.Application) error {
	app.UpdatedAt = time.Now()
	return m.applications.update(app)
}

func (m *MemoryStore) DeleteApplication(id string) error {
	return m.applications.delete(id)
}

// Counseling session operations
func (m *MemoryStore) CreateCounselingSession(session *models.CounselingSession) (*models.CounselingSession, error) {
	session.CreatedAt = time.Now()
	if session.Status == "" {
		session.Status = models.SessionStatusScheduled
	}
	return m.sessions.create(session)
}

func (m *MemoryStore) GetCounselingSession(id string) (*models.CounselingSession, error) {
	return m.sessions.get(id)
}

func (m *MemoryStore) GetAllCounselingSessions() ([]*models.CounselingSession, error) {
	return m.sessions.filter(nil), nil
}

func (m *MemoryStore) GetCounselingSessionsByStatus(status string) ([]*models.CounselingSession, error) {
	return m.sessions.filter(func(s *models.CounselingSession) bool {
		return s.Status == status
	}), nil
}

// UpdateCounselingSession replaces the session. Reminder timestamps are never cleared.
func (m *MemoryStore) UpdateCounselingSession(session *models.CounselingSession) error {
	existing, err := m.sessions.get(session.ID)
	if err != nil {
		return err
	}
	if session.DayReminderSentAt == nil {
		session.DayReminderSentAt = existing.DayReminderSentAt
	}
	if session.HourReminderSentAt == nil {
		session.HourReminderSentAt = existing.HourReminderSentAt
	}
	session.CreatedAt = existing.CreatedAt
	return m.sessions.update(session)
}

func (m *MemoryStore) DeleteCounselingSession(id string) error {
	return m.sessions.delete(id)
}

// Chat message operations
func (m *MemoryStore) CreateChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	return m.messages.create(msg)
}

func (m *MemoryStore) GetChatMessagesBySession(sessionID string) ([]*models.ChatMessage, error) {
	return m.messages.filter(func(msg *models.ChatMessage) bool {
		return msg.SessionID == sessionID
	}), nil
}

func (m *MemoryStore) GetChatMessagesByStudent(studentID string) ([]*models.ChatMessage, error) {
	return m.messages.filter(func(msg *models.ChatMessage) bool {
		return msg.StudentID == studentID
	}), nil
}
