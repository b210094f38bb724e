package usecase

import (
	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/ardiansyahrp/jobhub/internal/util"
)

type ProfileUsecase struct {
	userRepo    *repository.UserRepository
	companyRepo *repository.CompanyRepository
}

func NewProfileUsecase(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, companyRepo: companyRepo}
}

func (uc *ProfileUsecase) GetUser(actor auth.Identity) (*model.User, error) {
	user, err := uc.userRepo.FindByID(actor.ID)
	if err != nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (uc *ProfileUsecase) UpdateUser(actor auth.Identity, req dto.UpdateUserRequest) (*model.User, error) {
	user, err := uc.GetUser(actor)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update user", err)
	}
	return user, nil
}

func (uc *ProfileUsecase) UpdateSkills(actor auth.Identity, req dto.UpdateSkillsRequest) (*model.User, error) {
	user, err := uc.GetUser(actor)
	if err != nil {
		return nil, err
	}
	user.Skills = util.CleanList(req.Skills)
	if err := uc.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update skills", err)
	}
	return user, nil
}

func (uc *ProfileUsecase) UpdateExperience(actor auth.Identity, req dto.UpdateExperienceRequest) (*model.User, error) {
	user, err := uc.GetUser(actor)
	if err != nil {
		return nil, err
	}
	entries := make([]model.ExperienceEntry, len(req.Experience))
	for i, e := range req.Experience {
		entries[i] = model.ExperienceEntry{
			Title:       e.Title,
			Company:     e.Company,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		}
	}
	user.Experience = entries
	if err := uc.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update experience", err)
	}
	return user, nil
}

func (uc *ProfileUsecase) UpdateEducation(actor auth.Identity, req dto.UpdateEducationRequest) (*model.User, error) {
	user, err := uc.GetUser(actor)
	if err != nil {
		return nil, err
	}
	entries := make([]model.EducationEntry, len(req.Education))
	for i, e := range req.Education {
		entries[i] = model.EducationEntry{
			School:    e.School,
			Degree:    e.Degree,
			Field:     e.Field,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Current:   e.Current,
		}
	}
	user.Education = entries
	if err := uc.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update education", err)
	}
	return user, nil
}

func (uc *ProfileUsecase) UpdateResume(actor auth.Identity, req dto.UpdateResumeRequest) (*model.User, error) {
	user, err := uc.GetUser(actor)
	if err != nil {
		return nil, err
	}
	user.ResumeURL = req.ResumeURL
	if err := uc.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update resume", err)
	}
	return user, nil
}

func (uc *ProfileUsecase) GetCompany(actor auth.Identity) (*model.Company, error) {
	company, err := uc.companyRepo.FindByID(actor.ID)
	if err != nil {
		return nil, apperror.NotFound("company not found")
	}
	return company, nil
}

func (uc *ProfileUsecase) UpdateCompany(actor auth.Identity, req dto.UpdateCompanyRequest) (*model.Company, error) {
	company, err := uc.GetCompany(actor)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, apperror.Internal("failed to update company", err)
	}
	return company, nil
}
