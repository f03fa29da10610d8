package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher хеширует и проверяет пароли через bcrypt.
// Соль генерируется bcrypt'ом и живет внутри дайджеста.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает hasher с заданным work factor.
// Значения ниже bcrypt.DefaultCost (10) поднимаются до него:
// более дешевый хеш не защитит от офлайн-перебора.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash возвращает соленый односторонний дайджест пароля
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify сообщает, соответствует ли пароль дайджесту.
// bcrypt сравнивает дайджесты за константное время.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
