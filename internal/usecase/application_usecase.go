package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationUsecase struct {
	appRepo *repository.ApplicationRepository
	jobRepo *repository.JobRepository
}

func NewApplicationUsecase(appRepo *repository.ApplicationRepository, jobRepo *repository.JobRepository) *ApplicationUsecase {
	return &ApplicationUsecase{appRepo: appRepo, jobRepo: jobRepo}
}

// Apply submits an application for an active job and opens the paired chat,
// seeded with a system message from the company, in the same transaction.
// The (job, user) uniqueness rule is checked here and backed by the storage
// unique index, so a concurrent double-apply still collapses to one.
func (uc *ApplicationUsecase) Apply(actor auth.Identity, req dto.ApplyRequest) (*model.Application, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, apperror.Validation("invalid job id")
	}
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Internal("failed to load job", err)
	}
	if job.Status != model.JobStatusActive {
		return nil, apperror.Validation("job is not accepting applications")
	}
	if _, err := uc.appRepo.FindByJobAndUser(job.ID, actor.ID); err == nil {
		return nil, apperror.Conflict("you have already applied to this job")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("failed to check existing application", err)
	}

	now := time.Now()
	app := model.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		UserID:      actor.ID,
		CompanyID:   job.CompanyID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      model.ApplicationStatusPending,
		AppliedAt:   now,
	}
	chat := model.Chat{
		ID:        uuid.New(),
		UserID:    actor.ID,
		CompanyID: job.CompanyID,
		JobID:     job.ID,
		JobTitle:  job.Title,
		Messages: []model.Message{
			{
				ID:        uuid.New(),
				SenderID:  job.CompanyID,
				Content:   fmt.Sprintf("Thank you for applying to %s. We have received your application and will be in touch.", job.Title),
				CreatedAt: now,
			},
		},
	}
	if err := uc.appRepo.CreateWithChat(&app, &chat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("you have already applied to this job")
		}
		return nil, apperror.Internal("failed to submit application", err)
	}
	return &app, nil
}

func (uc *ApplicationUsecase) ListForUser(actor auth.Identity, status string, page, limit int) ([]model.Application, int64, error) {
	if status != "" && !model.IsValidApplicationStatus(status) {
		return nil, 0, apperror.Validation("invalid application status filter")
	}
	apps, total, err := uc.appRepo.ListByUser(actor.ID, status, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to list applications", err)
	}
	return apps, total, nil
}

func (uc *ApplicationUsecase) ListForJob(actor auth.Identity, jobID uuid.UUID, status string, page, limit int) ([]model.Application, int64, error) {
	if status != "" && !model.IsValidApplicationStatus(status) {
		return nil, 0, apperror.Validation("invalid application status filter")
	}
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.NotFound("job not found")
		}
		return nil, 0, apperror.Internal("failed to load job", err)
	}
	if job.CompanyID != actor.ID {
		return nil, 0, apperror.Forbidden("job belongs to another company")
	}
	apps, total, err := uc.appRepo.ListByJob(jobID, status, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to list applications", err)
	}
	return apps, total, nil
}

// Get enforces role-dependent ownership: a user sees only their own
// applications, a company only applications to its own jobs.
func (uc *ApplicationUsecase) Get(actor auth.Identity, id uuid.UUID) (*model.Application, error) {
	app, err := uc.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("application not found")
		}
		return nil, apperror.Internal("failed to load application", err)
	}
	switch {
	case actor.IsUser() && app.UserID == actor.ID:
		return app, nil
	case actor.IsCompany() && app.CompanyID == actor.ID:
		return app, nil
	}
	return nil, apperror.Forbidden("you do not have access to this application")
}

// UpdateStatus lets the owning company set any of the five statuses
// directly; only the enum and ownership are enforced, not a transition
// order. Writes are last-write-wins.
func (uc *ApplicationUsecase) UpdateStatus(actor auth.Identity, id uuid.UUID, status string) (*model.Application, error) {
	if !model.IsValidApplicationStatus(status) {
		return nil, apperror.Validation("invalid application status")
	}
	app, err := uc.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("application not found")
		}
		return nil, apperror.Internal("failed to load application", err)
	}
	// app.CompanyID is the write-once copy of the job's owner; checking it
	// keeps authorization working even if the job was since deleted.
	if app.CompanyID != actor.ID {
		return nil, apperror.Forbidden("application belongs to another company's job")
	}
	if err := uc.appRepo.UpdateStatus(id, status); err != nil {
		return nil, apperror.Internal("failed to update application status", err)
	}
	app.Status = status
	return app, nil
}

// Withdraw hard-deletes the actor's own application while it is still
// pending or reviewed. A mismatch on ownership reports NotFound rather than
// Forbidden so the endpoint doesn't leak whether the application exists.
// The paired chat is left in place.
func (uc *ApplicationUsecase) Withdraw(actor auth.Identity, id uuid.UUID) error {
	app, err := uc.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("application not found")
		}
		return apperror.Internal("failed to load application", err)
	}
	if app.UserID != actor.ID {
		return apperror.NotFound("application not found")
	}
	if !model.CanWithdraw(app.Status) {
		return apperror.Validation("application can no longer be withdrawn")
	}
	if err := uc.appRepo.Delete(id); err != nil {
		return apperror.Internal("failed to withdraw application", err)
	}
	return nil
}
