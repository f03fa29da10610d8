package auth

import (
	"errors"
	"fmt"
)

// Терминальные ошибки операций ядра аутентификации.
// Ни одна из них не ретраится сервисом; политика повторов — забота вызывающего.
var (
	// ErrInvalidCredentials неверный identifier или пароль.
	// Намеренно не отличим от "пользователь не найден", чтобы
	// нельзя было перебором выяснить существование аккаунта.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountLocked аккаунт временно заблокирован после серии неудачных входов
	ErrAccountLocked = errors.New("account temporarily locked")

	// ErrUserExists пользователь с таким email или username уже существует
	ErrUserExists = errors.New("user with this email or username already exists")

	// ErrInvalidToken токен не прошел проверку: формат, подпись или срок
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound токен валиден, но аккаунт исчез или деактивирован
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError описывает отсутствующее или некорректное поле запроса
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
