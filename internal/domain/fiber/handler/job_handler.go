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

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/jobs")
	jobs.Post("/", middleware.RequireCompany(), h.Create)
	jobs.Get("/", h.List)
	jobs.Get("/search", h.Search)
	jobs.Get("/company", middleware.RequireCompany(), h.ListCompany)
	jobs.Get("/:id", h.Get)
	jobs.Put("/:id", middleware.RequireCompany(), h.Update)
	jobs.Delete("/:id", middleware.RequireCompany(), h.Delete)
}

func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	job, err := h.uc.Create(middleware.IdentityFrom(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "job created",
		Data:    dto.NewJobResponse(job),
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	q := usecase.PublicJobQuery{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Company:  c.Query("company"),
	}
	if skills := c.Query("skills"); skills != "" {
		q.Skills = util.SplitList(skills)
	}
	jobs, total, err := h.uc.List(q, page, limit)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "jobs loaded",
		Data:       dto.NewJobResponses(jobs),
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	jobs, total, err := h.uc.Search(c.Query("q"), page, limit)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "jobs loaded",
		Data:       dto.NewJobResponses(jobs),
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *JobHandler) ListCompany(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	jobs, total, err := h.uc.ListByCompany(middleware.IdentityFrom(c), c.Query("status"), page, limit)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "jobs loaded",
		Data:       dto.NewJobResponses(jobs),
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}
	job, err := h.uc.Get(id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job loaded",
		Data:    dto.NewJobResponse(job),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	job, err := h.uc.Update(middleware.IdentityFrom(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job updated",
		Data:    dto.NewJobResponse(job),
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}
	if err := h.uc.Delete(middleware.IdentityFrom(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job deleted",
	})
}
