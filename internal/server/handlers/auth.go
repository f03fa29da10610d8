package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zikrhub/zikrhub/internal/server/auth"
	"github.com/zikrhub/zikrhub/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и входа
type AuthHandler struct {
	logger *slog.Logger
	auth   *auth.Service
}

// NewAuthHandler создает новый handler для аутентификации
func NewAuthHandler(logger *slog.Logger, authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   authService,
	}
}

// Register обрабатывает POST /api/auth/register
// Регистрация нового пользователя, в ответе токен и публичная проекция
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.auth.Register(ctx, auth.RegisterParams{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		sendAuthError(h.logger, w, err)
		return
	}

	sendData(h.logger, w, api.AuthData{
		User:  publicUser(user, false),
		Token: token,
	}, http.StatusCreated)
}

// Login обрабатывает POST /api/auth/login
// Вход по email или username
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.auth.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		sendAuthError(h.logger, w, err)
		return
	}

	sendData(h.logger, w, api.AuthData{
		User:  publicUser(user, false),
		Token: token,
	}, http.StatusOK)
}

// Logout обрабатывает POST /api/auth/logout
// Токены stateless, серверу нечего инвалидировать: клиент просто забывает
// токен. Отзыва до истечения срока нет.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sendMessage(h.logger, w, "logged out successfully", http.StatusOK)
}

// Me обрабатывает GET /api/auth/me
// Возвращает свежую проекцию пользователя, разрешенного auth middleware
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		// middleware не отработал, сюда попадать не должны
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sendData(h.logger, w, api.MeData{User: publicUser(user, true)}, http.StatusOK)
}
