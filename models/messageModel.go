package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

func IsValidMessageStatus(status string) bool {
	return status == MessageStatusUnread || status == MessageStatusRead
}

// Message is a contact form submission.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MessageInput is the public contact form body.
type MessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (in MessageInput) ToMessage() Message {
	return Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  MessageStatusUnread,
	}
}
