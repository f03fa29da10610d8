package auth

import (
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
)

// Константы политики по умолчанию
const (
	// DefaultLockoutThreshold количество неудачных попыток до блокировки
	DefaultLockoutThreshold = 5
	// DefaultLockoutDuration длительность блокировки
	DefaultLockoutDuration = 15 * time.Minute
)

// LockoutPolicy — чистая логика решения по security-состоянию аккаунта.
// Никакого I/O: читает счетчики, возвращает новые значения.
type LockoutPolicy struct {
	Threshold    int
	LockDuration time.Duration
}

// DefaultLockoutPolicy возвращает политику со стандартными значениями
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		Threshold:    DefaultLockoutThreshold,
		LockDuration: DefaultLockoutDuration,
	}
}

// CanAttempt сообщает, разрешена ли попытка входа.
// false только пока действует locked_until.
func (p LockoutPolicy) CanAttempt(user *models.User, now time.Time) bool {
	return user.LockedUntil == nil || !now.Before(*user.LockedUntil)
}

// OnFailure возвращает новое состояние после неудачной попытки:
// счетчик +1; при достижении порога — блокировка на LockDuration от now.
func (p LockoutPolicy) OnFailure(attempts int, now time.Time) (int, *time.Time) {
	attempts++
	if attempts >= p.Threshold {
		lockedUntil := now.Add(p.LockDuration)
		return attempts, &lockedUntil
	}
	return attempts, nil
}

// OnSuccess возвращает сброшенное состояние после успешного входа
func (p LockoutPolicy) OnSuccess() (int, *time.Time) {
	return 0, nil
}
