package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogery/internal/mocks"
	"github.com/VitaminP8/blogery/internal/storage/memory"
)

func setTestSecret(t *testing.T) {
	original := os.Getenv("JWT_SECRET")
	require.NoError(t, os.Setenv("JWT_SECRET", "test_secret_key_for_jwt"))
	t.Cleanup(func() { os.Setenv("JWT_SECRET", original) })
}

var testLogger = log.New(io.Discard, "", 0)

// newMockRouter собирает роутер поверх моков (для auth-сценариев)
func newMockRouter() (http.Handler, *mocks.MockUserStorage) {
	users := mocks.NewMockUserStorage()
	posts := mocks.NewMockPostStorage(users)
	comments := mocks.NewMockCommentStorage(posts)
	return Routes(users, posts, comments, testLogger), users
}

// newMemoryRouter собирает роутер поверх in-memory хранилищ (для CRUD-сценариев)
func newMemoryRouter() (http.Handler, *memory.UserMemoryStorage) {
	users := memory.NewUserMemoryStorage()
	posts := memory.NewPostMemoryStorage(users)
	comments := memory.NewCommentMemoryStorage(posts)
	return Routes(users, posts, comments, testLogger), users
}

// doRequest выполняет запрос к роутеру; body сериализуется в JSON, token - Bearer токен (может быть пустым)
func doRequest(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// decodeBody разбирает JSON ответа в map
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

// registerAndLogin регистрирует пользователя и возвращает его access токен
func registerAndLogin(t *testing.T, handler http.Handler, username string) string {
	t.Helper()

	rec := doRequest(t, handler, http.MethodPost, "/register/", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "pass1234",
		"password2": "pass1234",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/login/", "", map[string]string{
		"username": username,
		"password": "pass1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	access, ok := body["access"].(string)
	require.True(t, ok, "login response must contain access token")
	return access
}
