package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
)

const userColumns = `id, email, username, password_hash, first_name, last_name,
		role, is_active, email_verified, login_attempts, locked_until, created_at, last_login`

// CreateUser inserts a new user and returns it with the assigned id
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash, first_name, last_name,
			role, is_active, email_verified, login_attempts, locked_until, created_at, last_login)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.IsActive,
		user.EmailVerified,
		user.LoginAttempts,
		user.LockedUntil,
		user.CreatedAt,
		user.LastLogin,
	)
	if err != nil {
		// Проверяем на duplicate email/username
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, storage.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	created := *user
	created.ID = id

	return &created, nil
}

// ExistsByEmailOrUsername reports whether email or username is already taken
func (s *Storage) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = ? OR username = ?)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// FindActiveByIdentifier retrieves an active user by email or username
func (s *Storage) FindActiveByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE (email = ? OR username = ?) AND is_active = 1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, identifier, identifier))
}

// FindActiveByID retrieves an active user by id
func (s *Storage) FindActiveByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = ? AND is_active = 1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// UpdateSecurityState persists attempts/locked_until keyed by the previously
// read counter, so concurrent failed logins cannot overwrite each other
func (s *Storage) UpdateSecurityState(ctx context.Context, id int64, expectedAttempts, attempts int, lockedUntil *time.Time) error {
	query := `
		UPDATE users
		SET login_attempts = ?, locked_until = ?
		WHERE id = ? AND login_attempts = ?
	`

	result, err := s.db.ExecContext(ctx, query, attempts, lockedUntil, id, expectedAttempts)
	if err != nil {
		return fmt.Errorf("failed to update security state: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrStaleSecurityState
	}

	return nil
}

// RecordSuccessfulLogin resets the counter, clears the lock and stamps last_login
func (s *Storage) RecordSuccessfulLogin(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE users
		SET login_attempts = 0, locked_until = NULL, last_login = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to record successful login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var lockedUntil, lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsActive,
		&user.EmailVerified,
		&user.LoginAttempts,
		&lockedUntil,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lockedUntil.Valid {
		user.LockedUntil = &lockedUntil.Time
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}
