package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/ardiansyahrp/jobhub/internal/repository"
	"github.com/ardiansyahrp/jobhub/internal/usecase"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Chat{},
		&model.Message{},
	))

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	chatRepo := repository.NewChatRepository(db)

	app := fiber.New()
	NewAuthHandler(usecase.NewAuthUsecase(userRepo, companyRepo)).RegisterRoutes(app)
	NewProfileHandler(usecase.NewProfileUsecase(userRepo, companyRepo)).RegisterRoutes(app)
	NewJobHandler(usecase.NewJobUsecase(jobRepo)).RegisterRoutes(app)
	NewApplicationHandler(usecase.NewApplicationUsecase(appRepo, jobRepo)).RegisterRoutes(app)
	NewChatHandler(usecase.NewChatUsecase(chatRepo)).RegisterRoutes(app)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func request(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func registerCompany(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, env := request(t, app, "POST", "/auth/company/register", "", fiber.Map{
		"name":     "Acme Corp",
		"email":    "hr@acme.test",
		"password": "rocket-skates",
		"industry": "Software",
		"location": "Berlin",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	return data.Token
}

func registerUser(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, env := request(t, app, "POST", "/auth/user/register", "", fiber.Map{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@mail.test",
		"password":   "analytical-engine",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	return data.Token
}

func createJob(t *testing.T, app *fiber.App, companyToken string) string {
	t.Helper()
	code, env := request(t, app, "POST", "/jobs/", companyToken, fiber.Map{
		"title":        "Backend Engineer",
		"location":     "Berlin",
		"description":  "Build and run backend services.",
		"requirements": "3+ years of Go, SQL fluency",
		"type":         "full-time",
		"skills":       []string{"Go", "PostgreSQL"},
		"experience":   "3+ years",
		"education":    "Any",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, env, &job)
	require.Equal(t, "active", job.Status)
	return job.ID
}

// Full lifecycle: company posts a job, user applies, chat opens with one
// system message, company moves the application to interviewing, at which
// point the user can no longer withdraw.
func TestApplicationLifecycle(t *testing.T) {
	app := newTestApp(t)
	companyToken := registerCompany(t, app)
	userToken := registerUser(t, app)
	jobID := createJob(t, app, companyToken)

	// the delimited requirements string was normalized into a list
	code, env := request(t, app, "GET", "/jobs/"+jobID, "", nil)
	require.Equal(t, fiber.StatusOK, code)
	var jobDetail struct {
		Requirements []string `json:"requirements"`
		Company      struct {
			Name string `json:"name"`
		} `json:"company"`
	}
	decodeData(t, env, &jobDetail)
	require.Equal(t, []string{"3+ years of Go", "SQL fluency"}, jobDetail.Requirements)
	require.Equal(t, "Acme Corp", jobDetail.Company.Name)

	code, env = request(t, app, "POST", "/applications/apply", userToken, fiber.Map{
		"job_id":       jobID,
		"cover_letter": "I would love to join.",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var applied struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, env, &applied)
	require.Equal(t, "pending", applied.Status)

	// applying twice conflicts
	code, _ = request(t, app, "POST", "/applications/apply", userToken, fiber.Map{
		"job_id": jobID,
	})
	require.Equal(t, fiber.StatusConflict, code)

	// exactly one chat with exactly one company-authored message
	code, env = request(t, app, "GET", "/chats/", userToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	var chats []struct {
		ID          string `json:"id"`
		UnreadCount int    `json:"unread_count"`
	}
	decodeData(t, env, &chats)
	require.Len(t, chats, 1)
	require.Equal(t, 1, chats[0].UnreadCount)

	code, env = request(t, app, "GET", "/chats/"+chats[0].ID, userToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	var chat struct {
		Messages []struct {
			SenderID string `json:"sender_id"`
		} `json:"messages"`
		CompanyID string `json:"company_id"`
	}
	decodeData(t, env, &chat)
	require.Len(t, chat.Messages, 1)
	require.Equal(t, chat.CompanyID, chat.Messages[0].SenderID)

	code, _ = request(t, app, "PUT", "/applications/"+applied.ID+"/status", companyToken, fiber.Map{
		"status": "interviewing",
	})
	require.Equal(t, fiber.StatusOK, code)

	code, env = request(t, app, "GET", "/applications/"+applied.ID, userToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	var current struct {
		Status string `json:"status"`
	}
	decodeData(t, env, &current)
	require.Equal(t, "interviewing", current.Status)

	// withdrawal window is closed once interviewing
	code, _ = request(t, app, "DELETE", "/applications/withdraw/"+applied.ID, userToken, nil)
	require.Equal(t, fiber.StatusBadRequest, code)
}

func TestJobListingVisibility(t *testing.T) {
	app := newTestApp(t)
	companyToken := registerCompany(t, app)
	createJob(t, app, companyToken)

	// close the job
	code, env := request(t, app, "GET", "/jobs/company", companyToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	var mine []struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &mine)
	require.Len(t, mine, 1)
	code, _ = request(t, app, "PUT", "/jobs/"+mine[0].ID, companyToken, fiber.Map{
		"status": "closed",
	})
	require.Equal(t, fiber.StatusOK, code)

	// closed jobs disappear from the public listing
	code, env = request(t, app, "GET", "/jobs/", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	var public []struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &public)
	require.Empty(t, public)

	// the owner still sees them
	code, env = request(t, app, "GET", "/jobs/company?status=closed", companyToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &mine)
	require.Len(t, mine, 1)

	// applying to the closed job is rejected
	userToken := registerUser(t, app)
	code, _ = request(t, app, "POST", "/applications/apply", userToken, fiber.Map{
		"job_id": mine[0].ID,
	})
	require.Equal(t, fiber.StatusBadRequest, code)
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)
	companyToken := registerCompany(t, app)

	// missing required fields
	code, env := request(t, app, "POST", "/jobs/", companyToken, fiber.Map{
		"title": "Backend Engineer",
	})
	require.Equal(t, fiber.StatusBadRequest, code)
	require.False(t, env.Success)

	// user-only route rejects a company token
	code, _ = request(t, app, "POST", "/applications/apply", companyToken, fiber.Map{
		"job_id": "c5b0087a-33b0-4b1c-9b43-59f0a6ad24c7",
	})
	require.Equal(t, fiber.StatusForbidden, code)

	// unauthenticated job creation
	code, _ = request(t, app, "POST", "/jobs/", "", fiber.Map{})
	require.Equal(t, fiber.StatusUnauthorized, code)
}
