package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory sqlite gives each connection its own database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Chat{},
		&model.Message{},
	))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB) *model.Company {
	t.Helper()
	company := &model.Company{
		ID:           uuid.New(),
		Name:         "Acme Corp",
		Email:        fmt.Sprintf("hr-%s@acme.test", uuid.NewString()[:8]),
		PasswordHash: "x",
		Industry:     "Software",
		Location:     "Berlin",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        fmt.Sprintf("ada-%s@mail.test", uuid.NewString()[:8]),
		PasswordHash: "x",
		Skills:       []string{"Go", "SQL"},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, companyID uuid.UUID, status string) *model.Job {
	t.Helper()
	job := &model.Job{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Title:        "Backend Engineer",
		Location:     "Berlin",
		Description:  "Build and run backend services.",
		Requirements: []string{"3+ years of Go"},
		Type:         model.JobTypeFullTime,
		Skills:       []string{"Go", "PostgreSQL"},
		Experience:   "3+ years",
		Education:    "Any",
		Status:       status,
		PostedAt:     time.Now(),
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func requireAppErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
