package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

// DefaultCounselor runs every booked session
const DefaultCounselor = "Dr. Aisha Khan"

// Booking errors
var (
	ErrSlotNotSelected = errors.New("date and time not selected")
	ErrUnknownSlot     = errors.New("time slot not available")
	ErrInvalidMode     = errors.New("mode must be whatsapp, zoom or phone")
)

// TimeSlot is one bookable date and time
type TimeSlot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // "10:00 AM"
}

// Label renders the slot the way the picker shows it, e.g. "Sun, Oct 12 10:00 AM"
func (s TimeSlot) Label() string {
	day, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return s.Date + " " + s.Time
	}
	return day.Format("Mon, Jan 2") + " " + s.Time
}

// TimeSlots is the fixed list of counseling slots
var TimeSlots = []TimeSlot{
	{"2025-10-12", "10:00 AM"},
	{"2025-10-12", "02:00 PM"},
	{"2025-10-12", "04:00 PM"},
	{"2025-10-13", "11:00 AM"},
	{"2025-10-13", "03:00 PM"},
	{"2025-10-14", "09:00 AM"},
	{"2025-10-14", "02:00 PM"},
	{"2025-10-15", "10:30 AM"},
}

// BookingData is a confirmed booking
type BookingData struct {
	Counselor string `json:"counselor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Mode      string `json:"mode"`
}

// BookingForm holds the booking picker selection
type BookingForm struct {
	Mode string `json:"mode"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// NewBookingForm starts with Zoom selected and no slot
func NewBookingForm() *BookingForm {
	return &BookingForm{Mode: models.ModeZoom}
}

// SetMode selects one of the three session modes
func (f *BookingForm) SetMode(mode string) error {
	if !models.ValidMode(mode) {
		return ErrInvalidMode
	}
	f.Mode = mode
	return nil
}

// SelectSlot picks a date and time from TimeSlots
func (f *BookingForm) SelectSlot(date, slotTime string) error {
	for _, slot := range TimeSlots {
		if slot.Date == date && slot.Time == slotTime {
			f.Date = date
			f.Time = slotTime
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", date, slotTime, ErrUnknownSlot)
}

// Confirm returns the booking once both a date and a time are selected
func (f *BookingForm) Confirm() (*BookingData, error) {
	if f.Date == "" || f.Time == "" {
		return nil, ErrSlotNotSelected
	}
	if !models.ValidMode(f.Mode) {
		return nil, ErrInvalidMode
	}
	return &BookingData{
		Counselor: DefaultCounselor,
		Date:      f.Date,
		Time:      f.Time,
		Mode:      f.Mode,
	}, nil
}

// LongDate renders a YYYY-MM-DD date as "Monday, October 13, 2025"
func LongDate(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return day.Format("Monday, January 2, 2006")
}

// ConfirmationParams fills the booking_confirmation template
func (b *BookingData) ConfirmationParams() map[string]string {
	return map[string]string{
		"counselor": b.Counselor,
		"date":      LongDate(b.Date),
		"time":      b.Time,
		"mode":      models.ModeLabel(b.Mode),
	}
}

// ErrBookingClosed is returned when the booking panel is not open
var ErrBookingClosed = errors.New("booking panel is not open")

// BookingSelection is a partial update of the booking picker
type BookingSelection struct {
	Mode string `json:"mode"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookingService books counseling sessions from a chat session
type BookingService struct {
	store     storage.Store
	sessions  *SessionManager
	chat      *ChatService
	templates *TemplateService
}

// NewBookingService creates a new booking service
func NewBookingService(store storage.Store, sessions *SessionManager, chat *ChatService, templates *TemplateService) *BookingService {
	return &BookingService{
		store:     store,
		sessions:  sessions,
		chat:      chat,
		templates: templates,
	}
}

// Open shows the booking picker with a fresh selection
func (b *BookingService) Open(sessionID string) (*BookingForm, error) {
	var form BookingForm
	err := b.sessions.WithSession(sessionID, func(s *Session) error {
		if !s.Panels.Booking || s.Booking == nil {
			s.Booking = NewBookingForm()
		}
		s.Panels.Booking = true
		form = *s.Booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// Close hides the booking picker and discards the selection
func (b *BookingService) Close(sessionID string) error {
	return b.sessions.WithSession(sessionID, func(s *Session) error {
		s.Panels.Booking = false
		s.Booking = NewBookingForm()
		return nil
	})
}

// Select applies the non-empty fields of sel to the picker
func (b *BookingService) Select(sessionID string, sel BookingSelection) (*BookingForm, error) {
	var form BookingForm
	err := b.sessions.WithSession(sessionID, func(s *Session) error {
		if !s.Panels.Booking || s.Booking == nil {
			return ErrBookingClosed
		}
		if sel.Mode != "" {
			if err := s.Booking.SetMode(sel.Mode); err != nil {
				return err
			}
		}
		if sel.Date != "" || sel.Time != "" {
			if err := s.Booking.SelectSlot(sel.Date, sel.Time); err != nil {
				return err
			}
		}
		form = *s.Booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// Confirm books the selected slot. It fails with ErrSlotNotSelected until both
// a date and a time are picked. Once the session is stored the panel closes,
// the confirmation is added to the chat and sent over WhatsApp. A failed store
// keeps the selection.
func (b *BookingService) Confirm(sessionID string) (*BookingData, *models.CounselingSession, error) {
	var booking *BookingData
	var studentID, phone string
	err := b.sessions.WithSession(sessionID, func(s *Session) error {
		if !s.Panels.Booking || s.Booking == nil {
			return ErrBookingClosed
		}
		confirmed, err := s.Booking.Confirm()
		if err != nil {
			return err
		}
		booking = confirmed
		studentID = s.StudentID
		if s.Profile != nil {
			phone = s.Profile.Phone
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	record, err := b.store.CreateCounselingSession(&models.CounselingSession{
		StudentID:     studentID,
		StudentPhone:  phone,
		CounselorName: booking.Counselor,
		SessionDate:   booking.Date,
		SessionTime:   booking.Time,
		Mode:          booking.Mode,
		Status:        models.SessionStatusScheduled,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("store counseling session: %w", err)
	}
	err = b.sessions.WithSession(sessionID, func(s *Session) error {
		s.Panels.Booking = false
		s.Booking = NewBookingForm()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	log.Printf("🗓️  Counseling session %s booked for %s %s (%s)", record.ID, booking.Date, booking.Time, booking.Mode)

	text, err := b.templates.Render("booking_confirmation", booking.ConfirmationParams())
	if err != nil {
		return nil, nil, err
	}
	if _, err := b.chat.AddAIMessage(sessionID, text); err != nil {
		return nil, nil, err
	}

	if phone != "" && b.templates.notifier != nil {
		if err := b.templates.notifier.SendWhatsAppMessage(phone, text); err != nil {
			log.Printf("⚠️  Failed to send booking confirmation to %s: %v", phone, err)
		}
	}

	return booking, record, nil
}
