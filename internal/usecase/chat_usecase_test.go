package usecase

import (
	"testing"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/dto"
	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// applyAndChat seeds a full application with its paired chat and returns the chat.
func applyAndChat(t *testing.T, db *gorm.DB, userID uuid.UUID, companyID uuid.UUID) *model.Chat {
	t.Helper()
	appUC, chatRepo := newApplicationUsecase(db)
	job := seedJob(t, db, companyID, model.JobStatusActive)
	app, err := appUC.Apply(userActor(userID), dto.ApplyRequest{JobID: job.ID.String()})
	require.NoError(t, err)
	chat, err := chatRepo.FindByApplication(app.ID)
	require.NoError(t, err)
	return chat
}

func TestSendMessage(t *testing.T) {
	db := newTestDB(t)
	uc := NewChatUsecase(repository.NewChatRepository(db))
	company := seedCompany(t, db)
	user := seedUser(t, db)
	outsider := seedUser(t, db)
	chat := applyAndChat(t, db, user.ID, company.ID)

	msg, err := uc.SendMessage(userActor(user.ID), chat.ID, "Hello, when can we talk?")
	require.NoError(t, err)
	require.Equal(t, user.ID, msg.SenderID)
	require.False(t, msg.IsRead)

	_, err = uc.SendMessage(userActor(user.ID), chat.ID, "   ")
	requireAppErrorCode(t, err, fiber.StatusBadRequest)

	_, err = uc.SendMessage(userActor(outsider.ID), chat.ID, "let me in")
	requireAppErrorCode(t, err, fiber.StatusForbidden)

	_, err = uc.SendMessage(userActor(user.ID), uuid.New(), "hello?")
	requireAppErrorCode(t, err, fiber.StatusNotFound)

	reloaded, err := uc.Get(userActor(user.ID), chat.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Messages, 2)
	require.False(t, reloaded.UpdatedAt.Before(chat.UpdatedAt))
}

func TestMarkReadFlipsOnlyOtherPartysMessages(t *testing.T) {
	db := newTestDB(t)
	uc := NewChatUsecase(repository.NewChatRepository(db))
	company := seedCompany(t, db)
	user := seedUser(t, db)
	chat := applyAndChat(t, db, user.ID, company.ID)

	_, err := uc.SendMessage(userActor(user.ID), chat.ID, "Question about the role")
	require.NoError(t, err)
	_, err = uc.SendMessage(companyActor(company.ID), chat.ID, "Happy to answer")
	require.NoError(t, err)

	// user marks read: the seeded system message + company reply flip,
	// the user's own message stays unread
	updated, err := uc.MarkRead(userActor(user.ID), chat.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, updated)

	reloaded, err := uc.Get(userActor(user.ID), chat.ID)
	require.NoError(t, err)
	for _, m := range reloaded.Messages {
		if m.SenderID == user.ID {
			require.False(t, m.IsRead)
		} else {
			require.True(t, m.IsRead)
		}
	}

	// nothing left to flip for the user; still succeeds
	updated, err = uc.MarkRead(userActor(user.ID), chat.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, updated)

	outsider := seedUser(t, db)
	_, err = uc.MarkRead(userActor(outsider.ID), chat.ID)
	requireAppErrorCode(t, err, fiber.StatusForbidden)
}

func TestListChats(t *testing.T) {
	db := newTestDB(t)
	uc := NewChatUsecase(repository.NewChatRepository(db))
	company := seedCompany(t, db)
	user := seedUser(t, db)

	first := applyAndChat(t, db, user.ID, company.ID)
	second := applyAndChat(t, db, user.ID, company.ID)

	// touch the first chat so it sorts to the top
	time.Sleep(10 * time.Millisecond)
	_, err := uc.SendMessage(companyActor(company.ID), first.ID, "Are you available tomorrow?")
	require.NoError(t, err)

	summaries, err := uc.List(userActor(user.ID))
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, first.ID.String(), summaries[0].ID)
	require.Equal(t, second.ID.String(), summaries[1].ID)

	// system message + the new company message are unread for the user
	require.Equal(t, 2, summaries[0].UnreadCount)
	require.NotNil(t, summaries[0].LastMessage)
	require.Equal(t, "Are you available tomorrow?", summaries[0].LastMessage.Content)

	// for the company both messages in the first chat are its own
	companySide, err := uc.List(companyActor(company.ID))
	require.NoError(t, err)
	require.Len(t, companySide, 2)
	require.Equal(t, 0, companySide[0].UnreadCount)

	outsider := seedUser(t, db)
	empty, err := uc.List(userActor(outsider.ID))
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestGetChatParticipantOnly(t *testing.T) {
	db := newTestDB(t)
	uc := NewChatUsecase(repository.NewChatRepository(db))
	company := seedCompany(t, db)
	rival := seedCompany(t, db)
	user := seedUser(t, db)
	chat := applyAndChat(t, db, user.ID, company.ID)

	_, err := uc.Get(userActor(user.ID), chat.ID)
	require.NoError(t, err)
	_, err = uc.Get(companyActor(company.ID), chat.ID)
	require.NoError(t, err)
	_, err = uc.Get(companyActor(rival.ID), chat.ID)
	requireAppErrorCode(t, err, fiber.StatusForbidden)
	_, err = uc.Get(userActor(user.ID), uuid.New())
	requireAppErrorCode(t, err, fiber.StatusNotFound)
}
