package usecase

import (
	"errors"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobRepo *repository.JobRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

// PublicJobQuery is the filter surface open to anyone browsing jobs.
// Listings are always restricted to active jobs.
type PublicJobQuery struct {
	Title    string
	Location string
	Type     string
	Company  string
	Skills   []string
}

func (uc *JobUsecase) Create(actor auth.Identity, req dto.CreateJobRequest) (*model.Job, error) {
	status := req.Status
	if status == "" {
		status = model.JobStatusActive
	}
	job := model.Job{
		ID:           uuid.New(),
		CompanyID:    actor.ID,
		Title:        req.Title,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: util.CleanList(req.Requirements),
		Type:         req.Type,
		Salary:       req.Salary,
		Skills:       util.CleanList(req.Skills),
		Experience:   req.Experience,
		Education:    req.Education,
		Deadline:     req.Deadline,
		Status:       status,
		PostedAt:     time.Now(),
	}
	if err := uc.jobRepo.Create(&job); err != nil {
		return nil, apperror.Internal("failed to create job", err)
	}
	return uc.Get(job.ID)
}

func (uc *JobUsecase) List(q PublicJobQuery, page, limit int) ([]model.Job, int64, error) {
	if q.Type != "" && !model.IsValidJobType(q.Type) {
		return nil, 0, apperror.Validation("invalid job type filter")
	}
	f := repository.JobFilter{
		Title:    q.Title,
		Location: q.Location,
		Type:     q.Type,
		Skills:   q.Skills,
		Status:   model.JobStatusActive,
	}
	if q.Company != "" {
		companyID, err := uuid.Parse(q.Company)
		if err != nil {
			return nil, 0, apperror.Validation("invalid company id")
		}
		f.CompanyID = companyID
	}
	jobs, total, err := uc.jobRepo.List(f, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to list jobs", err)
	}
	return jobs, total, nil
}

func (uc *JobUsecase) Search(term string, page, limit int) ([]model.Job, int64, error) {
	if term == "" {
		return nil, 0, apperror.Validation("search term is required")
	}
	jobs, total, err := uc.jobRepo.Search(term, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to search jobs", err)
	}
	return jobs, total, nil
}

// ListByCompany returns the actor's own jobs across every status, optionally
// narrowed to one.
func (uc *JobUsecase) ListByCompany(actor auth.Identity, status string, page, limit int) ([]model.Job, int64, error) {
	if status != "" && !model.IsValidJobStatus(status) {
		return nil, 0, apperror.Validation("invalid job status filter")
	}
	f := repository.JobFilter{CompanyID: actor.ID, Status: status}
	jobs, total, err := uc.jobRepo.List(f, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to list company jobs", err)
	}
	return jobs, total, nil
}

func (uc *JobUsecase) Get(id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, apperror.Internal("failed to load job", err)
	}
	return job, nil
}

func (uc *JobUsecase) Update(actor auth.Identity, id uuid.UUID, req dto.UpdateJobRequest) (*model.Job, error) {
	job, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != actor.ID {
		return nil, apperror.Forbidden("job belongs to another company")
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = util.CleanList(*req.Requirements)
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.Skills != nil {
		job.Skills = util.CleanList(*req.Skills)
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Education != nil {
		job.Education = *req.Education
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, apperror.Internal("failed to update job", err)
	}
	return job, nil
}

// Delete hard-deletes the job. Existing applications and chats are left in
// place; they stay readable through their own endpoints.
func (uc *JobUsecase) Delete(actor auth.Identity, id uuid.UUID) error {
	job, err := uc.Get(id)
	if err != nil {
		return err
	}
	if job.CompanyID != actor.ID {
		return apperror.Forbidden("job belongs to another company")
	}
	if err := uc.jobRepo.Delete(id); err != nil {
		return apperror.Internal("failed to delete job", err)
	}
	return nil
}
