package repository

import (
	"time"

	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) FindByID(id uuid.UUID) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&chat, "id = ?", id).Error
	return &chat, err
}

func (r *ChatRepository) FindByApplication(applicationID uuid.UUID) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&chat, "application_id = ?", applicationID).Error
	return &chat, err
}

// ListByParticipant returns every chat the actor takes part in, either side,
// most recently touched first, with messages loaded for unread counting.
func (r *ChatRepository) ListByParticipant(actorID uuid.UUID) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).
		Where("user_id = ? OR company_id = ?", actorID, actorID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

// AppendMessage adds a message and touches the chat's modification time in
// one transaction.
func (r *ChatRepository) AppendMessage(msg *model.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Chat{}).
			Where("id = ?", msg.ChatID).
			Update("updated_at", time.Now()).Error
	})
}

// MarkRead flips the read flag on every unread message in the chat that was
// NOT sent by the actor. Returns the number of rows touched.
func (r *ChatRepository) MarkRead(chatID, actorID uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, actorID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
