package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"

	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

func IsValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

func IsValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job belongs to exactly one Company; CompanyID never changes after creation.
type Job struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"company_id"`
	Company      Company      `gorm:"foreignKey:CompanyID" json:"-"`
	Title        string       `gorm:"size:190;not null" json:"title"`
	Location     string       `gorm:"size:190;not null" json:"location"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Requirements []string     `gorm:"serializer:json" json:"requirements"`
	Type         string       `gorm:"size:50;not null" json:"type"`
	Salary       *SalaryRange `gorm:"serializer:json" json:"salary,omitempty"`
	Skills       []string     `gorm:"serializer:json" json:"skills"`
	Experience   string       `gorm:"type:text" json:"experience"`
	Education    string       `gorm:"type:text" json:"education"`
	Deadline     *time.Time   `json:"deadline,omitempty"`
	Status       string       `gorm:"size:50;not null;default:'active';index" json:"status"`
	PostedAt     time.Time    `gorm:"index" json:"posted_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
