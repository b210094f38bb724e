package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:190;not null" json:"name"`
	Email        string    `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Industry     string    `gorm:"size:190;not null" json:"industry"`
	Location     string    `gorm:"size:190;not null" json:"location"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Website      string    `gorm:"size:500" json:"website,omitempty"`
	LogoURL      string    `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
