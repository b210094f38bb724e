package dto

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
)

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID.String(),
		SenderID:  m.SenderID.String(),
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// ChatSummaryResponse is one row of the chat inbox: unread count is relative
// to the requesting participant, preview is the latest message.
type ChatSummaryResponse struct {
	ID            string           `json:"id"`
	ApplicationID string           `json:"application_id"`
	JobID         string           `json:"job_id"`
	JobTitle      string           `json:"job_title"`
	UserID        string           `json:"user_id"`
	CompanyID     string           `json:"company_id"`
	UnreadCount   int              `json:"unread_count"`
	LastMessage   *MessageResponse `json:"last_message,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ChatResponse struct {
	ID            string            `json:"id"`
	ApplicationID string            `json:"application_id"`
	JobID         string            `json:"job_id"`
	JobTitle      string            `json:"job_title"`
	UserID        string            `json:"user_id"`
	CompanyID     string            `json:"company_id"`
	Messages      []MessageResponse `json:"messages"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func NewChatResponse(c *model.Chat) ChatResponse {
	messages := make([]MessageResponse, len(c.Messages))
	for i := range c.Messages {
		messages[i] = NewMessageResponse(&c.Messages[i])
	}
	return ChatResponse{
		ID:            c.ID.String(),
		ApplicationID: c.ApplicationID.String(),
		JobID:         c.JobID.String(),
		JobTitle:      c.JobTitle,
		UserID:        c.UserID.String(),
		CompanyID:     c.CompanyID.String(),
		Messages:      messages,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
