package repository

import (
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepository) Update(company *model.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepository) FindByID(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "id = ?", id).Error
	return &company, err
}

func (r *CompanyRepository) FindByEmail(email string) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "email = ?", email).Error
	return &company, err
}
