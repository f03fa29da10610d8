package storage

import (
	"context"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
)

// UserStorage defines interface for account persistence.
// Implementations must enforce email/username uniqueness with storage-level
// constraints: the check-then-create in the service is only a friendly
// pre-check and is racy on its own.
type UserStorage interface {
	// CreateUser inserts a new user and returns it with the assigned id.
	// Returns ErrUserAlreadyExists on an email or username collision.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// ExistsByEmailOrUsername reports whether an account (active or not)
	// already holds the email or the username
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// FindActiveByIdentifier retrieves an active user whose email or
	// username equals identifier.
	// Returns ErrUserNotFound if no active user matches.
	FindActiveByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// FindActiveByID retrieves an active user by id.
	// Returns ErrUserNotFound if the user doesn't exist or is disabled.
	FindActiveByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateSecurityState persists the attempt counter and lock timestamp
	// as a single conditioned update keyed by the previously read counter.
	// Returns ErrStaleSecurityState when expectedAttempts no longer matches.
	UpdateSecurityState(ctx context.Context, id int64, expectedAttempts, attempts int, lockedUntil *time.Time) error

	// RecordSuccessfulLogin resets the attempt counter, clears the lock
	// and stamps last_login
	RecordSuccessfulLogin(ctx context.Context, id int64, at time.Time) error
}
