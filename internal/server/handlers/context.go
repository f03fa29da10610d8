package handlers

import (
	"context"

	"github.com/zikrhub/zikrhub/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// UserKey ключ, под которым auth middleware кладет разрешенного
// пользователя в контекст запроса
const UserKey contextKey = "user"

// UserFromContext достает аутентифицированного пользователя из контекста
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
