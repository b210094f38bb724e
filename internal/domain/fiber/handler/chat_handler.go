package handler

import (
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/middleware"
	"github.com/ardiansyahrp/jobhub/internal/usecase"
	"github.com/ardiansyahrp/jobhub/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	uc *usecase.ChatUsecase
}

func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	chats := app.Group("/chats", middleware.RequireAuth())
	chats.Get("/", h.List)
	chats.Get("/:chatId", h.Get)
	chats.Post("/:chatId/messages", h.SendMessage)
	chats.Put("/:chatId/read", h.MarkRead)
}

func (h *ChatHandler) List(c *fiber.Ctx) error {
	summaries, err := h.uc.List(middleware.IdentityFrom(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "chats loaded",
		Data:    summaries,
	})
}

func (h *ChatHandler) Get(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid chat id",
		}, err)
	}
	chat, err := h.uc.Get(middleware.IdentityFrom(c), chatID)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "chat loaded",
		Data:    dto.NewChatResponse(chat),
	})
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid chat id",
		}, err)
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.HandleError(c, err)
	}
	msg, err := h.uc.SendMessage(middleware.IdentityFrom(c), chatID, req.Content)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "message sent",
		Data:    dto.NewMessageResponse(msg),
	})
}

func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid chat id",
		}, err)
	}
	updated, err := h.uc.MarkRead(middleware.IdentityFrom(c), chatID)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "chat marked read",
		Data:    fiber.Map{"updated": updated},
	})
}
