package dto

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
)

type CreateJobRequest struct {
	Title        string             `json:"title" validate:"required"`
	Location     string             `json:"location" validate:"required"`
	Description  string             `json:"description" validate:"required"`
	Requirements StringList         `json:"requirements" validate:"required,min=1"`
	Type         string             `json:"type" validate:"required,oneof=full-time part-time contract internship remote"`
	Salary       *model.SalaryRange `json:"salary"`
	Skills       StringList         `json:"skills" validate:"required,min=1"`
	Experience   string             `json:"experience" validate:"required"`
	Education    string             `json:"education" validate:"required"`
	Deadline     *time.Time         `json:"deadline"`
	Status       string             `json:"status" validate:"omitempty,oneof=active closed draft"`
}

// UpdateJobRequest carries only the allow-listed mutable fields; company
// ownership is never among them.
type UpdateJobRequest struct {
	Title        *string            `json:"title"`
	Location     *string            `json:"location"`
	Description  *string            `json:"description"`
	Requirements *StringList        `json:"requirements"`
	Type         *string            `json:"type" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Salary       *model.SalaryRange `json:"salary"`
	Skills       *StringList        `json:"skills"`
	Experience   *string            `json:"experience"`
	Education    *string            `json:"education"`
	Deadline     *time.Time         `json:"deadline"`
	Status       *string            `json:"status" validate:"omitempty,oneof=active closed draft"`
}

type JobResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	Requirements []string           `json:"requirements"`
	Type         string             `json:"type"`
	Salary       *model.SalaryRange `json:"salary,omitempty"`
	Skills       []string           `json:"skills"`
	Experience   string             `json:"experience"`
	Education    string             `json:"education"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
	Status       string             `json:"status"`
	PostedAt     time.Time          `json:"posted_at"`
	Company      CompanySummary     `json:"company"`
}

func NewJobResponse(j *model.Job) JobResponse {
	return JobResponse{
		ID:           j.ID.String(),
		Title:        j.Title,
		Location:     j.Location,
		Description:  j.Description,
		Requirements: j.Requirements,
		Type:         j.Type,
		Salary:       j.Salary,
		Skills:       j.Skills,
		Experience:   j.Experience,
		Education:    j.Education,
		Deadline:     j.Deadline,
		Status:       j.Status,
		PostedAt:     j.PostedAt,
		Company:      NewCompanySummary(&j.Company),
	}
}

func NewJobResponses(jobs []model.Job) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i := range jobs {
		out[i] = NewJobResponse(&jobs[i])
	}
	return out
}

type JobSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

func NewJobSummary(j *model.Job) JobSummary {
	return JobSummary{
		ID:       j.ID.String(),
		Title:    j.Title,
		Location: j.Location,
		Type:     j.Type,
		Status:   j.Status,
	}
}
