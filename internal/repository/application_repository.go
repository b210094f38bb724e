package repository

import (
	"errors"

	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

// CreateWithChat persists the application and its paired chat in one
// transaction so a chat failure rolls the application back too. Chat
// creation is idempotent on the application reference.
func (r *ApplicationRepository) CreateWithChat(app *model.Application, chat *model.Chat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		var existing model.Chat
		err := tx.First(&existing, "application_id = ?", app.ID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		chat.ApplicationID = app.ID
		return tx.Create(chat).Error
	})
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Job").First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) FindByJobAndUser(jobID, userID uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "job_id = ? AND user_id = ?", jobID, userID).Error
	return &app, err
}

func (r *ApplicationRepository) ListByUser(userID uuid.UUID, status string, page, limit int) ([]model.Application, int64, error) {
	q := r.db.Model(&model.Application{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := q.Preload("Job").Preload("Job.Company").
		Order("applied_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepository) ListByJob(jobID uuid.UUID, status string, page, limit int) ([]model.Application, int64, error) {
	q := r.db.Model(&model.Application{}).Where("job_id = ?", jobID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := q.Preload("User").
		Order("applied_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error
	return apps, total, err
}

// UpdateStatus is a plain last-write-wins write; concurrent updates to the
// same application are not serialized beyond the store's row lock.
func (r *ApplicationRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&model.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApplicationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Application{}, "id = ?", id).Error
}
