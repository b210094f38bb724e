package usecase

import (
	"errors"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	userRepo    *repository.UserRepository
	companyRepo *repository.CompanyRepository
}

func NewAuthUsecase(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, companyRepo: companyRepo}
}

func (uc *AuthUsecase) RegisterUser(req dto.RegisterUserRequest) (dto.AuthResponse, error) {
	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, apperror.Internal("failed to hash password", err)
	}
	user := model.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Location:     req.Location,
		Bio:          req.Bio,
	}
	if err := uc.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AuthResponse{}, apperror.Conflict("email already registered")
		}
		return dto.AuthResponse{}, apperror.Internal("failed to create user", err)
	}
	return uc.issue(user.ID, auth.RoleUser)
}

func (uc *AuthUsecase) RegisterCompany(req dto.RegisterCompanyRequest) (dto.AuthResponse, error) {
	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, apperror.Internal("failed to hash password", err)
	}
	company := model.Company{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Industry:     req.Industry,
		Location:     req.Location,
		Description:  req.Description,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
	}
	if err := uc.companyRepo.Create(&company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AuthResponse{}, apperror.Conflict("email already registered")
		}
		return dto.AuthResponse{}, apperror.Internal("failed to create company", err)
	}
	return uc.issue(company.ID, auth.RoleCompany)
}

func (uc *AuthUsecase) LoginUser(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil || !util.CheckPassword(user.PasswordHash, req.Password) {
		return dto.AuthResponse{}, apperror.Unauthorized("invalid email or password")
	}
	return uc.issue(user.ID, auth.RoleUser)
}

func (uc *AuthUsecase) LoginCompany(req dto.LoginRequest) (dto.AuthResponse, error) {
	company, err := uc.companyRepo.FindByEmail(req.Email)
	if err != nil || !util.CheckPassword(company.PasswordHash, req.Password) {
		return dto.AuthResponse{}, apperror.Unauthorized("invalid email or password")
	}
	return uc.issue(company.ID, auth.RoleCompany)
}

func (uc *AuthUsecase) issue(id uuid.UUID, role auth.Role) (dto.AuthResponse, error) {
	token, err := auth.IssueToken(id, role)
	if err != nil {
		return dto.AuthResponse{}, apperror.Internal("failed to issue token", err)
	}
	return dto.AuthResponse{Token: token, Role: string(role), ID: id.String()}, nil
}
