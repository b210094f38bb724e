package model

import (
	"time"

	"github.com/google/uuid"
)

// Chat is the side-channel paired 1:1 with an Application. UserID, CompanyID
// and JobID are write-once copies taken from the application at creation time
// so participant checks and listing need no joins.
type Chat struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	JobID         uuid.UUID `gorm:"type:uuid;not null" json:"job_id"`
	JobTitle      string    `gorm:"size:190" json:"job_title"`
	Messages      []Message `gorm:"foreignKey:ChatID" json:"messages,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`
}

func (c *Chat) IsParticipant(actorID uuid.UUID) bool {
	return c.UserID == actorID || c.CompanyID == actorID
}

// Message is append-only; the only mutation after creation is the read flag.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index" json:"chat_id"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
