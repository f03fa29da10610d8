// Package auth реализует ядро аутентификации: регистрацию, вход с
// защитой от перебора и разрешение identity по токену.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
	"github.com/zikrhub/zikrhub/internal/server/token"
	"github.com/zikrhub/zikrhub/internal/validation"
)

// RegisterParams входные поля регистрации
type RegisterParams struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Service оркестрирует хранилище, hasher, политику блокировки и токены.
// Сам по себе stateless: единственное разделяемое состояние — хранилище.
type Service struct {
	logger  *slog.Logger
	users   storage.UserStorage
	tokens  *token.Manager
	hasher  *PasswordHasher
	lockout LockoutPolicy

	// подменяется в тестах
	now func() time.Time
}

// NewService создает сервис аутентификации
func NewService(
	logger *slog.Logger,
	users storage.UserStorage,
	tokens *token.Manager,
	hasher *PasswordHasher,
	lockout LockoutPolicy,
) *Service {
	return &Service{
		logger:  logger,
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
		lockout: lockout,
		now:     time.Now,
	}
}

// Register создает аккаунт с ролью "user" и сразу выпускает токен.
// Возвращает ErrUserExists при коллизии email или username.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.User, string, error) {
	const op = "auth.Register"

	if err := validation.ValidateEmail(params.Email); err != nil {
		return nil, "", validationErrorf("%v", err)
	}
	if err := validation.ValidateUsername(params.Username); err != nil {
		return nil, "", validationErrorf("%v", err)
	}
	if err := validation.ValidatePassword(params.Password); err != nil {
		return nil, "", validationErrorf("%v", err)
	}

	// Дружелюбная предварительная проверка; гонку двух одновременных
	// регистраций закрывает UNIQUE constraint в хранилище.
	exists, err := s.users.ExistsByEmailOrUsername(ctx, params.Email, params.Username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, "", ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: passwordHash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	tok, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username))

	return created, tok, nil
}

// Login аутентифицирует по email или username и паролю.
// Неудачные попытки увеличивают счетчик; на пороге аккаунт блокируется.
func (s *Service) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	const op = "auth.Login"

	if identifier == "" {
		return nil, "", validationErrorf("identifier is required")
	}
	if password == "" {
		return nil, "", validationErrorf("password is required")
	}

	user, err := s.users.FindActiveByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// тот же ответ, что и на неверный пароль
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	if !s.lockout.CanAttempt(user, now) {
		s.logger.WarnContext(ctx, "login attempt on locked account",
			slog.Int64("user_id", user.ID))
		return nil, "", ErrAccountLocked
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		attempts, lockedUntil := s.lockout.OnFailure(user.LoginAttempts, now)

		err := s.users.UpdateSecurityState(ctx, user.ID, user.LoginAttempts, attempts, lockedUntil)
		switch {
		case errors.Is(err, storage.ErrStaleSecurityState):
			// параллельная неудачная попытка уже записала инкремент
			s.logger.DebugContext(ctx, "security state already advanced",
				slog.Int64("user_id", user.ID))
		case err != nil:
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}

		s.logger.WarnContext(ctx, "login failed: wrong password",
			slog.Int64("user_id", user.ID),
			slog.Int("attempts", attempts),
			slog.Bool("locked", lockedUntil != nil))

		return nil, "", ErrInvalidCredentials
	}

	if err := s.users.RecordSuccessfulLogin(ctx, user.ID, now.UTC()); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	// отражаем сброс в возвращаемой проекции
	attempts, lockedUntil := s.lockout.OnSuccess()
	user.LoginAttempts = attempts
	user.LockedUntil = lockedUntil
	lastLogin := now.UTC()
	user.LastLogin = &lastLogin

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return user, tok, nil
}

// AuthenticateByToken проверяет токен и возвращает свежее состояние
// аккаунта из хранилища, а не устаревшие claims.
func (s *Service) AuthenticateByToken(ctx context.Context, tokenString string) (*models.User, error) {
	const op = "auth.AuthenticateByToken"

	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindActiveByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// токен валиден, но аккаунт исчез или деактивирован
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
