package handler

import (
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/middleware"
	"github.com/ardiansyahrp/jobhub/internal/usecase"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.RequireUser())
	users.Get("/me", h.GetUser)
	users.Put("/me", h.UpdateUser)
	users.Put("/me/skills", h.UpdateSkills)
	users.Put("/me/experience", h.UpdateExperience)
	users.Put("/me/education", h.UpdateEducation)
	users.Put("/me/resume", h.UpdateResume)

	companies := app.Group("/companies", middleware.RequireCompany())
	companies.Get("/me", h.GetCompany)
	companies.Put("/me", h.UpdateCompany)
}

func (h *ProfileHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.GetUser(middleware.IdentityFrom(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile loaded",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	user, err := h.uc.UpdateUser(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile updated",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) UpdateSkills(c *fiber.Ctx) error {
	var req dto.UpdateSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.UpdateSkills(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "skills updated",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) UpdateExperience(c *fiber.Ctx) error {
	var req dto.UpdateExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.UpdateExperience(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "experience updated",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) UpdateEducation(c *fiber.Ctx) error {
	var req dto.UpdateEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.UpdateEducation(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "education updated",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) UpdateResume(c *fiber.Ctx) error {
	var req dto.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.UpdateResume(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "resume updated",
		Data:    dto.NewUserProfileResponse(user),
	})
}

func (h *ProfileHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.uc.GetCompany(middleware.IdentityFrom(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile loaded",
		Data:    dto.NewCompanyProfileResponse(company),
	})
}

func (h *ProfileHandler) UpdateCompany(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	company, err := h.uc.UpdateCompany(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile updated",
		Data:    dto.NewCompanyProfileResponse(company),
	})
}
