package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is one line of a conversation transcript. Messages are never updated.
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	SessionID string    `json:"session_id" gorm:"index" bson:"session_id"`
	StudentID string    `json:"student_id,omitempty" gorm:"index" bson:"student_id,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Sender    string    `json:"sender" bson:"sender"` // "student" or "ai"
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Sender tags
const (
	SenderStudent = "student"
	SenderAI      = "ai"
)

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
