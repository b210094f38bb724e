package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending      = "pending"
	ApplicationStatusReviewed     = "reviewed"
	ApplicationStatusInterviewing = "interviewing"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusAccepted     = "accepted"
)

func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterviewing,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// CanWithdraw reports whether the applicant may still delete the application.
func CanWithdraw(status string) bool {
	return status == ApplicationStatusPending || status == ApplicationStatusReviewed
}

// Application links one User to one Job. CompanyID is a write-once copy of
// the job's owner so authorization checks don't need a join; JobID remains
// the source of truth. The composite unique index guarantees at most one
// application per (job, user) pair even under concurrent applies.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Job         Job       `gorm:"foreignKey:JobID" json:"-"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL   string    `gorm:"size:500" json:"resume_url,omitempty"`
	Status      string    `gorm:"size:50;not null;default:'pending';index" json:"status"`
	AppliedAt   time.Time `gorm:"index" json:"applied_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
