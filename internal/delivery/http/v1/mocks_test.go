package v1

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"smarttask/internal/models"
	"smarttask/internal/services"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, params services.CredentialsParams) (*models.User, error) {
	args := m.Called(ctx, params)

	var user *models.User
	if value := args.Get(0); value != nil {
		user = value.(*models.User)
	}
	return user, args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, params services.CredentialsParams) (*services.LoginResult, error) {
	args := m.Called(ctx, params)

	var result *services.LoginResult
	if value := args.Get(0); value != nil {
		result = value.(*services.LoginResult)
	}
	return result, args.Error(1)
}

func (m *authServiceMock) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, params services.CreateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]*models.Task, error) {
	args := m.Called(ctx)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, params services.UpdateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const (
	testOrigin = "http://localhost:3000"
	testToken  = "good-token"
	testUserID = "user-1"
)

func newTestRouter(auth services.AuthService, tasks services.TaskService) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, New(zerolog.Nop(), auth, tasks), testOrigin)
	return router
}

// newAuthorizedAuthMock returns an auth mock that accepts testToken and
// nothing else.
func newAuthorizedAuthMock() *authServiceMock {
	authMock := new(authServiceMock)
	authMock.On("ParseToken", testToken).Return(testUserID, nil)
	return authMock
}

func newAuthorizedRequest(method, target string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
