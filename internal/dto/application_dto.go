package dto

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
)

type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid4"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationResponse struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	UserID      string            `json:"user_id"`
	CompanyID   string            `json:"company_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	Status      string            `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	Job         *JobSummary       `json:"job,omitempty"`
	Company     *CompanySummary   `json:"company,omitempty"`
	Applicant   *ApplicantSummary `json:"applicant,omitempty"`
}

func NewApplicationResponse(a *model.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		UserID:      a.UserID.String(),
		CompanyID:   a.CompanyID.String(),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
}

// NewUserApplicationResponse joins job and company summaries in, for the
// applicant's own listing.
func NewUserApplicationResponse(a *model.Application) ApplicationResponse {
	resp := NewApplicationResponse(a)
	job := NewJobSummary(&a.Job)
	resp.Job = &job
	company := NewCompanySummary(&a.Job.Company)
	resp.Company = &company
	return resp
}

// NewCompanyApplicationResponse joins the applicant summary in, for the
// company's per-job listing.
func NewCompanyApplicationResponse(a *model.Application) ApplicationResponse {
	resp := NewApplicationResponse(a)
	applicant := NewApplicantSummary(&a.User)
	resp.Applicant = &applicant
	return resp
}
