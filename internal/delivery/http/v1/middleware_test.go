package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(new(authServiceMock), new(taskServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{
		"Token abc",
		"Bearer",
		"abc",
	} {
		router := newTestRouter(new(authServiceMock), new(taskServiceMock))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("ParseToken", "bad-token").
		Return("", errors.New("token is expired")).Once()

	taskMock := new(taskServiceMock)
	router := newTestRouter(authMock, taskMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	taskMock.AssertNotCalled(t, "ListTasks", mock.Anything)
	authMock.AssertExpectations(t)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := newTestRouter(new(authServiceMock), new(taskServiceMock))

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSMiddleware_SetsOriginOnResponses(t *testing.T) {
	taskMock := new(taskServiceMock)
	taskMock.On("ListTasks", mock.Anything).Return(nil, nil).Once()

	router := newTestRouter(newAuthorizedAuthMock(), taskMock)

	req := newAuthorizedRequest(http.MethodGet, "/tasks", "")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	taskMock.AssertExpectations(t)
}
