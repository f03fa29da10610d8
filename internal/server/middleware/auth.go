package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zikrhub/zikrhub/internal/server/auth"
	"github.com/zikrhub/zikrhub/internal/server/handlers"
)

// Authenticate создает middleware проверки bearer-токена.
// Токен разрешается в свежего пользователя через AuthenticateByToken,
// так что деактивированный аккаунт отсекается даже с валидным токеном.
func Authenticate(logger *slog.Logger, authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				writeJSONError(w, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				writeJSONError(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			user, err := authService.AuthenticateByToken(r.Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInvalidToken):
					logger.Warn("invalid access token", "error", err)
					writeJSONError(w, "invalid or expired token", http.StatusUnauthorized)
				case errors.Is(err, auth.ErrUserNotFound):
					logger.Warn("token for missing or disabled user")
					writeJSONError(w, "user not found", http.StatusNotFound)
				default:
					logger.Error("failed to authenticate token", "error", err)
					writeJSONError(w, "internal server error", http.StatusInternalServerError)
				}
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserKey, user)

			logger.Debug("user authenticated",
				"user_id", user.ID, "username", user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin создает middleware, пропускающий только роль admin.
// Должен стоять после Authenticate.
func RequireAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := handlers.UserFromContext(r.Context())
			if !ok {
				writeJSONError(w, "missing token", http.StatusUnauthorized)
				return
			}

			if !user.IsAdmin() {
				logger.Warn("admin endpoint denied",
					"user_id", user.ID, "role", user.Role)
				writeJSONError(w, "admin access required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONError пишет ошибку в том же конверте, что и handlers
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}
