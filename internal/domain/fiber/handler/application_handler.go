package handler

import (
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/middleware"
	"github.com/ardiansyahrp/jobhub/internal/response"
	"github.com/ardiansyahrp/jobhub/internal/usecase"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	apps := app.Group("/applications")
	apps.Post("/apply", middleware.RequireUser(), h.Apply)
	apps.Get("/user/applications", middleware.RequireUser(), h.ListForUser)
	apps.Delete("/withdraw/:id", middleware.RequireUser(), h.Withdraw)
	apps.Get("/job/:jobId", middleware.RequireCompany(), h.ListForJob)
	apps.Put("/:id/status", middleware.RequireCompany(), h.UpdateStatus)
	apps.Get("/:id", middleware.RequireAuth(), h.Get)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	app, err := h.uc.Apply(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "application submitted",
		Data:    dto.NewApplicationResponse(app),
	})
}

func (h *ApplicationHandler) ListForUser(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	apps, total, err := h.uc.ListForUser(middleware.IdentityFrom(c), c.Query("status"), page, limit)
	if err != nil {
		return util.HandleError(c, err)
	}
	data := make([]dto.ApplicationResponse, len(apps))
	for i := range apps {
		data[i] = dto.NewUserApplicationResponse(&apps[i])
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "applications loaded",
		Data:       data,
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}
	page, limit := pageParams(c)
	apps, total, err := h.uc.ListForJob(middleware.IdentityFrom(c), jobID, c.Query("status"), page, limit)
	if err != nil {
		return util.HandleError(c, err)
	}
	data := make([]dto.ApplicationResponse, len(apps))
	for i := range apps {
		data[i] = dto.NewCompanyApplicationResponse(&apps[i])
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "applications loaded",
		Data:       data,
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}
	app, err := h.uc.Get(middleware.IdentityFrom(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	resp := dto.NewApplicationResponse(app)
	job := dto.NewJobSummary(&app.Job)
	resp.Job = &job
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "application loaded",
		Data:    resp,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	app, err := h.uc.UpdateStatus(middleware.IdentityFrom(c), id, req.Status)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "application status updated",
		Data:    dto.NewApplicationResponse(app),
	})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}
	if err := h.uc.Withdraw(middleware.IdentityFrom(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "application withdrawn",
	})
}
