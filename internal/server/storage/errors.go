package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email or username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStaleSecurityState indicates that a conditioned security-state update
	// matched no row because a concurrent login attempt got there first
	ErrStaleSecurityState = errors.New("stale security state")

	// ErrZikrNotFound indicates that zikr was not found in storage
	ErrZikrNotFound = errors.New("zikr not found")
)
