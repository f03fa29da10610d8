package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zikrhub/zikrhub/internal/config"
	"github.com/zikrhub/zikrhub/internal/server/storage/sqlite"
	"github.com/zikrhub/zikrhub/pkg/api"
)

// setupTestServer поднимает полный HTTP API поверх in-memory SQLite
func setupTestServer(t *testing.T) (http.Handler, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		Env: "local",
		Auth: config.Auth{
			JWTSecret:        "test-secret",
			TokenTTL:         7 * 24 * time.Hour,
			BcryptCost:       10,
			LockoutThreshold: 5,
			LockoutDuration:  15 * time.Minute,
			RateLimit:        100,
			RateWindow:       time.Minute,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(cfg, logger, store, "test")

	return srv.Router(), store
}

func doRequest(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndGetToken(t *testing.T, router http.Handler, email, username string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "Secret123!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool         `json:"success"`
		Data    api.AuthData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NotEmpty(t, envelope.Data.Token)

	return envelope.Data.Token
}

func TestServer_Health(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_RegisterLoginMeFlow(t *testing.T) {
	router, _ := setupTestServer(t)

	token := registerAndGetToken(t, router, "a@x.com", "alice")

	// вход по username
	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		Identifier: "alice",
		Password:   "Secret123!",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// /me с токеном регистрации
	rec = doRequest(t, router, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool       `json:"success"`
		Data    api.MeData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "alice", envelope.Data.User.Username)
	assert.NotNil(t, envelope.Data.User.CreatedAt)
}

func TestServer_Me_WithoutToken(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Logout(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}

func TestServer_ZikrsCatalog(t *testing.T) {
	router, store := setupTestServer(t)

	// каталог публичный
	rec := doRequest(t, router, http.MethodGet, "/api/zikrs", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "subhan_allah")

	// запись в каталог требует роль admin
	token := registerAndGetToken(t, router, "a@x.com", "alice")

	body := api.ZikrRequest{Arabic: "ذكر", Latin: "X", Identifier: "custom_x"}

	rec = doRequest(t, router, http.MethodPost, "/api/zikrs", token, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// повышаем роль и пробуем снова
	_, err := store.DB().Exec(`UPDATE users SET role = 'admin' WHERE username = 'alice'`)
	require.NoError(t, err)

	rec = doRequest(t, router, http.MethodPost, "/api/zikrs", token, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_ZikrsCatalog_Anonymous(t *testing.T) {
	router, _ := setupTestServer(t)

	body := api.ZikrRequest{Arabic: "ذكر", Latin: "X", Identifier: "custom_x"}

	rec := doRequest(t, router, http.MethodPost, "/api/zikrs", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ProgressFlow(t *testing.T) {
	router, _ := setupTestServer(t)

	token := registerAndGetToken(t, router, "a@x.com", "alice")

	rec := doRequest(t, router, http.MethodPost, "/api/progress", token, api.ProgressRequest{
		ZikrID: 1,
		Date:   "2026-08-30",
		Count:  10,
		Target: 33,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/progress?date=2026-08-30", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":10`)

	// без токена прогресс недоступен
	rec = doRequest(t, router, http.MethodGet, "/api/progress", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Languages(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/languages", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ar"`)
	assert.Contains(t, rec.Body.String(), `"rtl":true`)
}

func TestServer_LockoutEndToEnd(t *testing.T) {
	router, _ := setupTestServer(t)

	registerAndGetToken(t, router, "a@x.com", "alice")

	for i := 0; i < 5; i++ {
		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			Identifier: "alice",
			Password:   "wrong-password",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		Identifier: "alice",
		Password:   "Secret123!",
	})
	assert.Equal(t, http.StatusLocked, rec.Code)
}
