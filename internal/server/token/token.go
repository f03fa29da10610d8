// Package token выпускает и проверяет сессионные токены.
//
// Токен — компактный JWT (HS256): base64url(header) "." base64url(payload)
// "." base64url(HMAC-SHA256(secret, header "." payload)). Сервер не хранит
// сессий, все claims зашиты в сам токен.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zikrhub/zikrhub/internal/models"
)

// ErrInvalidToken возвращается на любой невалидный токен:
// неверный формат, неверная подпись, истекший срок
var ErrInvalidToken = errors.New("invalid token")

// Claims представляет identity-факты, зашитые в токен
type Claims struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены одним симметричным секретом
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создает менеджер токенов.
// secret должен быть криптографически стойкой случайной строкой.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выпускает токен для пользователя со сроком действия ttl
func (m *Manager) Issue(user *models.User) (string, error) {
	now := m.now()

	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify проверяет токен и возвращает claims.
// Любая ошибка (формат, подпись, срок) схлопывается в ErrInvalidToken:
// частично доверенных результатов не бывает.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
