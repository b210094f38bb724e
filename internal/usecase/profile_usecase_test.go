package usecase

import (
	"testing"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileUsecase(db *gorm.DB) *ProfileUsecase {
	return NewProfileUsecase(repository.NewUserRepository(db), repository.NewCompanyRepository(db))
}

func TestUpdateUserProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	user := seedUser(t, db)

	bio := "Backend engineer."
	location := "Amsterdam"
	updated, err := uc.UpdateUser(userActor(user.ID), dto.UpdateUserRequest{
		Bio:      &bio,
		Location: &location,
	})
	require.NoError(t, err)
	require.Equal(t, bio, updated.Bio)
	require.Equal(t, location, updated.Location)
	// untouched fields stay as they were
	require.Equal(t, user.FirstName, updated.FirstName)

	updated, err = uc.UpdateSkills(userActor(user.ID), dto.UpdateSkillsRequest{
		Skills: dto.StringList{" Go ", "Kafka", ""},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Kafka"}, updated.Skills)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err = uc.UpdateExperience(userActor(user.ID), dto.UpdateExperienceRequest{
		Experience: []dto.ExperienceEntryRequest{
			{Title: "Engineer", Company: "Acme", StartDate: start, Current: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Experience, 1)
	require.True(t, updated.Experience[0].Current)

	updated, err = uc.UpdateResume(userActor(user.ID), dto.UpdateResumeRequest{
		ResumeURL: "https://cdn.example.test/cv.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.test/cv.pdf", updated.ResumeURL)
}

func TestUpdateCompanyProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	company := seedCompany(t, db)

	website := "https://acme.test"
	industry := "Robotics"
	updated, err := uc.UpdateCompany(companyActor(company.ID), dto.UpdateCompanyRequest{
		Website:  &website,
		Industry: &industry,
	})
	require.NoError(t, err)
	require.Equal(t, website, updated.Website)
	require.Equal(t, industry, updated.Industry)
	require.Equal(t, company.Name, updated.Name)
}
