package model

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceEntry struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type EducationEntry struct {
	School    string     `json:"school"`
	Degree    string     `json:"degree"`
	Field     string     `json:"field"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Current   bool       `json:"current"`
}

type User struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string            `gorm:"size:100;not null" json:"first_name"`
	LastName     string            `gorm:"size:100;not null" json:"last_name"`
	Email        string            `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash string            `gorm:"size:255;not null" json:"-"`
	Location     string            `gorm:"size:190" json:"location,omitempty"`
	Bio          string            `gorm:"type:text" json:"bio,omitempty"`
	Skills       []string          `gorm:"serializer:json" json:"skills,omitempty"`
	Experience   []ExperienceEntry `gorm:"serializer:json" json:"experience,omitempty"`
	Education    []EducationEntry  `gorm:"serializer:json" json:"education,omitempty"`
	ResumeURL    string            `gorm:"size:500" json:"resume_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
