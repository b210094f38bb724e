package dto

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
)

type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
}

type CompanyProfileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyProfileResponse(c *model.Company) CompanyProfileResponse {
	return CompanyProfileResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		Industry:    c.Industry,
		Location:    c.Location,
		Description: c.Description,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		CreatedAt:   c.CreatedAt,
	}
}

type CompanySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
}

func NewCompanySummary(c *model.Company) CompanySummary {
	return CompanySummary{
		ID:       c.ID.String(),
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
		LogoURL:  c.LogoURL,
	}
}
