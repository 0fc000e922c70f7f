package services

import (
	"fmt"
	"strings"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

// NoApplicationsMessage is shown when a lookup matches nothing
const NoApplicationsMessage = "No applications found. Please check your Application ID and try again."

// ApplicationLookup is the status form. Email is collected but not used for filtering.
type ApplicationLookup struct {
	ApplicationID string `json:"application_id"`
	Email         string `json:"email"`
}

// ApplicationService answers application status lookups
type ApplicationService struct {
	store    storage.Store
	sessions *SessionManager
}

// NewApplicationService creates a new application service
func NewApplicationService(store storage.Store, sessions *SessionManager) *ApplicationService {
	return &ApplicationService{
		store:    store,
		sessions: sessions,
	}
}

// Search returns applications whose id contains the lookup id, ignoring case
func (a *ApplicationService) Search(lookup ApplicationLookup) ([]*models.Application, error) {
	apps, err := a.store.SearchApplications(strings.TrimSpace(lookup.ApplicationID))
	if err != nil {
		return nil, fmt.Errorf("search applications: %w", err)
	}
	return apps, nil
}

// Open shows the application panel
func (a *ApplicationService) Open(sessionID string) error {
	return a.sessions.SetPanel(sessionID, PanelApplication, true)
}

// Close hides the application panel
func (a *ApplicationService) Close(sessionID string) error {
	return a.sessions.SetPanel(sessionID, PanelApplication, false)
}

// StatusTone maps an application status to a display tone
func StatusTone(status string) string {
	switch strings.ToLower(status) {
	case "accepted":
		return "success"
	case "shortlisted":
		return "info"
	case "under review":
		return "warning"
	case "rejected":
		return "danger"
	default:
		return "default"
	}
}
