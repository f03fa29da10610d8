package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/auth"
	"github.com/zikrhub/zikrhub/pkg/api"
)

// sendData отправляет успешный ответ в конверте {success, data}
func sendData(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	sendEnvelope(logger, w, api.Envelope{Success: true, Data: data}, statusCode)
}

// sendMessage отправляет успешный ответ без данных
func sendMessage(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendEnvelope(logger, w, api.Envelope{Success: true, Message: message}, statusCode)
}

// sendError отправляет ответ с ошибкой в конверте {success: false, message}
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendEnvelope(logger, w, api.Envelope{Success: false, Message: message}, statusCode)
}

func sendEnvelope(logger *slog.Logger, w http.ResponseWriter, envelope api.Envelope, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendAuthError транслирует ошибки ядра аутентификации в HTTP статусы:
// 400 валидация, 401 credentials/token, 404 исчезнувший аккаунт,
// 409 конфликт регистрации, 423 блокировка, 500 все остальное.
// Детали StorageError наружу не отдаются.
func sendAuthError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var validationErr *auth.ValidationError

	switch {
	case errors.As(err, &validationErr):
		sendError(logger, w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrInvalidCredentials):
		sendError(logger, w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrInvalidToken):
		sendError(logger, w, "invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrUserNotFound):
		sendError(logger, w, "user not found", http.StatusNotFound)
	case errors.Is(err, auth.ErrUserExists):
		sendError(logger, w, "user with this email or username already exists", http.StatusConflict)
	case errors.Is(err, auth.ErrAccountLocked):
		sendError(logger, w, "account is temporarily locked, please try again later", http.StatusLocked)
	default:
		logger.Error("internal error", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// publicUser собирает публичную проекцию аккаунта.
// withAudit добавляет createdAt/lastLogin (только для /auth/me).
func publicUser(user *models.User, withAudit bool) api.User {
	projection := api.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}

	if withAudit {
		createdAt := user.CreatedAt.Format(timeFormat)
		projection.CreatedAt = &createdAt
		if user.LastLogin != nil {
			lastLogin := user.LastLogin.Format(timeFormat)
			projection.LastLogin = &lastLogin
		}
	}

	return projection
}

const timeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339
