package models

import "time"

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет аккаунт пользователя в системе
type User struct {
	ID            int64      `json:"id"`                  // числовой id, назначается при создании
	Email         string     `json:"email"`               // уникальный email
	Username      string     `json:"username"`            // уникальный username
	PasswordHash  string     `json:"-"`                   // bcrypt хеш пароля, наружу не отдается
	FirstName     string     `json:"firstName"`           // имя (опционально)
	LastName      string     `json:"lastName"`            // фамилия (опционально)
	Role          string     `json:"role"`                // "user" или "admin"
	IsActive      bool       `json:"-"`                   // soft-delete флаг
	EmailVerified bool       `json:"-"`                   // подтвержден ли email
	LoginAttempts int        `json:"-"`                   // счетчик неудачных попыток входа
	LockedUntil   *time.Time `json:"-"`                   // до какого времени вход заблокирован
	CreatedAt     time.Time  `json:"createdAt"`           // время создания
	LastLogin     *time.Time `json:"lastLogin,omitempty"` // время последнего успешного входа
}

// IsAdmin сообщает, имеет ли пользователь административную роль
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
