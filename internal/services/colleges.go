package services

import (
	"fmt"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

// TopCollegesLimit is how many colleges the panel lists
const TopCollegesLimit = 5

const defaultCollegeDescription = "Premier educational institution"

// CollegeService serves the college catalog and its chat follow-ups
type CollegeService struct {
	store     storage.Store
	sessions  *SessionManager
	chat      *ChatService
	templates *TemplateService
}

// NewCollegeService creates a new college service
func NewCollegeService(store storage.Store, sessions *SessionManager, chat *ChatService, templates *TemplateService) *CollegeService {
	return &CollegeService{
		store:     store,
		sessions:  sessions,
		chat:      chat,
		templates: templates,
	}
}

// Top returns the first colleges of the catalog
func (c *CollegeService) Top() ([]*models.College, error) {
	colleges, err := c.store.GetAllColleges()
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	if len(colleges) > TopCollegesLimit {
		colleges = colleges[:TopCollegesLimit]
	}
	return colleges, nil
}

// Get looks up a college by id
func (c *CollegeService) Get(id string) (*models.College, error) {
	return c.store.GetCollege(id)
}

// Open shows the colleges panel
func (c *CollegeService) Open(sessionID string) error {
	return c.sessions.SetPanel(sessionID, PanelColleges, true)
}

// Close hides the colleges panel
func (c *CollegeService) Close(sessionID string) error {
	return c.sessions.SetPanel(sessionID, PanelColleges, false)
}

// ViewDetails posts the college summary to the session's chat
func (c *CollegeService) ViewDetails(sessionID, collegeID string) (*models.ChatMessage, error) {
	college, err := c.store.GetCollege(collegeID)
	if err != nil {
		return nil, err
	}

	description := college.Description
	if description == "" {
		description = defaultCollegeDescription
	}

	text, err := c.templates.Render("college_details", map[string]string{
		"name":        college.Name,
		"description": description,
		"city":        college.LocationCity,
		"state":       college.LocationState,
		"type":        college.Type,
		"fee_band":    college.FeeBand(),
	})
	if err != nil {
		return nil, err
	}
	return c.chat.AddAIMessage(sessionID, text)
}

// Apply posts the application checklist for the college to the session's chat
func (c *CollegeService) Apply(sessionID, collegeID string) (*models.ChatMessage, error) {
	college, err := c.store.GetCollege(collegeID)
	if err != nil {
		return nil, err
	}

	text, err := c.templates.Render("college_apply", map[string]string{"name": college.Name})
	if err != nil {
		return nil, err
	}
	return c.chat.AddAIMessage(sessionID, text)
}
