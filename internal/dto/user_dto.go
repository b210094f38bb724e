package dto

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
)

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
}

type UpdateSkillsRequest struct {
	Skills StringList `json:"skills" validate:"required"`
}

type ExperienceEntryRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type UpdateExperienceRequest struct {
	Experience []ExperienceEntryRequest `json:"experience" validate:"required,dive"`
}

type EducationEntryRequest struct {
	School    string     `json:"school" validate:"required"`
	Degree    string     `json:"degree" validate:"required"`
	Field     string     `json:"field" validate:"required"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`
	Current   bool       `json:"current"`
}

type UpdateEducationRequest struct {
	Education []EducationEntryRequest `json:"education" validate:"required,dive"`
}

type UpdateResumeRequest struct {
	ResumeURL string `json:"resume_url" validate:"required,url"`
}

type UserProfileResponse struct {
	ID         string                  `json:"id"`
	FirstName  string                  `json:"first_name"`
	LastName   string                  `json:"last_name"`
	Email      string                  `json:"email"`
	Location   string                  `json:"location,omitempty"`
	Bio        string                  `json:"bio,omitempty"`
	Skills     []string                `json:"skills,omitempty"`
	Experience []model.ExperienceEntry `json:"experience,omitempty"`
	Education  []model.EducationEntry  `json:"education,omitempty"`
	ResumeURL  string                  `json:"resume_url,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

func NewUserProfileResponse(u *model.User) UserProfileResponse {
	return UserProfileResponse{
		ID:         u.ID.String(),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Location:   u.Location,
		Bio:        u.Bio,
		Skills:     u.Skills,
		Experience: u.Experience,
		Education:  u.Education,
		ResumeURL:  u.ResumeURL,
		CreatedAt:  u.CreatedAt,
	}
}

// ApplicantSummary is the slice of a user profile a company sees on an
// application listing.
type ApplicantSummary struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Location  string   `json:"location,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	ResumeURL string   `json:"resume_url,omitempty"`
}

func NewApplicantSummary(u *model.User) ApplicantSummary {
	return ApplicantSummary{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Location:  u.Location,
		Skills:    u.Skills,
		ResumeURL: u.ResumeURL,
	}
}
