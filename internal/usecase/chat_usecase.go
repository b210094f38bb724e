package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/apperror"
	"github.com/ardiansyahrp/jobhub/internal/auth"
	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatUsecase struct {
	chatRepo *repository.ChatRepository
}

func NewChatUsecase(chatRepo *repository.ChatRepository) *ChatUsecase {
	return &ChatUsecase{chatRepo: chatRepo}
}

// List returns the actor's chat inbox with per-chat unread counts. Unread
// means a message from the other participant that hasn't been marked read.
func (uc *ChatUsecase) List(actor auth.Identity) ([]dto.ChatSummaryResponse, error) {
	chats, err := uc.chatRepo.ListByParticipant(actor.ID)
	if err != nil {
		return nil, apperror.Internal("failed to list chats", err)
	}
	out := make([]dto.ChatSummaryResponse, len(chats))
	for i := range chats {
		chat := &chats[i]
		unread := 0
		for _, m := range chat.Messages {
			if m.SenderID != actor.ID && !m.IsRead {
				unread++
			}
		}
		summary := dto.ChatSummaryResponse{
			ID:            chat.ID.String(),
			ApplicationID: chat.ApplicationID.String(),
			JobID:         chat.JobID.String(),
			JobTitle:      chat.JobTitle,
			UserID:        chat.UserID.String(),
			CompanyID:     chat.CompanyID.String(),
			UnreadCount:   unread,
			UpdatedAt:     chat.UpdatedAt,
		}
		if n := len(chat.Messages); n > 0 {
			last := dto.NewMessageResponse(&chat.Messages[n-1])
			summary.LastMessage = &last
		}
		out[i] = summary
	}
	return out, nil
}

func (uc *ChatUsecase) Get(actor auth.Identity, chatID uuid.UUID) (*model.Chat, error) {
	chat, err := uc.chatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("chat not found")
		}
		return nil, apperror.Internal("failed to load chat", err)
	}
	if !chat.IsParticipant(actor.ID) {
		return nil, apperror.Forbidden("you are not a participant in this chat")
	}
	return chat, nil
}

func (uc *ChatUsecase) SendMessage(actor auth.Identity, chatID uuid.UUID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.Validation("message content is required")
	}
	chat, err := uc.Get(actor, chatID)
	if err != nil {
		return nil, err
	}
	msg := model.Message{
		ID:        uuid.New(),
		ChatID:    chat.ID,
		SenderID:  actor.ID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := uc.chatRepo.AppendMessage(&msg); err != nil {
		return nil, apperror.Internal("failed to send message", err)
	}
	return &msg, nil
}

// MarkRead flips the read flag on the other participant's messages only.
// Succeeds even when there was nothing to update.
func (uc *ChatUsecase) MarkRead(actor auth.Identity, chatID uuid.UUID) (int64, error) {
	chat, err := uc.Get(actor, chatID)
	if err != nil {
		return 0, err
	}
	updated, err := uc.chatRepo.MarkRead(chat.ID, actor.ID)
	if err != nil {
		return 0, apperror.Internal("failed to mark chat read", err)
	}
	return updated, nil
}
