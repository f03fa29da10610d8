// Package server собирает HTTP API из handlers и middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zikrhub/zikrhub/internal/config"
	"github.com/zikrhub/zikrhub/internal/server/auth"
	"github.com/zikrhub/zikrhub/internal/server/handlers"
	"github.com/zikrhub/zikrhub/internal/server/middleware"
	"github.com/zikrhub/zikrhub/internal/server/storage"
	"github.com/zikrhub/zikrhub/internal/server/token"
)

// Storage объединяет все хранилища, которые нужны серверу
type Storage interface {
	storage.UserStorage
	storage.ZikrStorage
	storage.LanguageStorage
	storage.ProgressStorage
}

// Server держит зависимости HTTP API
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	auth    *auth.Service
	store   Storage
	version string
}

// New создает сервер: из конфигурации собираются менеджер токенов,
// hasher, политика блокировки и сервис аутентификации
func New(cfg *config.Config, logger *slog.Logger, store Storage, version string) *Server {
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	lockout := auth.LockoutPolicy{
		Threshold:    cfg.Auth.LockoutThreshold,
		LockDuration: cfg.Auth.LockoutDuration,
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		auth:    auth.NewService(logger, store, tokens, hasher, lockout),
		store:   store,
		version: version,
	}
}

// AuthService отдает сервис аутентификации (используется в тестах)
func (s *Server) AuthService() *auth.Service {
	return s.auth
}

// Router собирает маршруты API
func (s *Server) Router() http.Handler {
	authHandler := handlers.NewAuthHandler(s.logger, s.auth)
	zikrHandler := handlers.NewZikrHandler(s.logger, s.store)
	progressHandler := handlers.NewProgressHandler(s.logger, s.store)
	languageHandler := handlers.NewLanguageHandler(s.logger, s.store)
	healthHandler := handlers.NewHealthHandler(s.logger, s.version)

	authenticate := middleware.Authenticate(s.logger, s.auth)
	requireAdmin := middleware.RequireAdmin(s.logger)
	loginRateLimit := middleware.RateLimit(s.cfg.Auth.RateLimit, s.cfg.Auth.RateWindow, s.logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.LoggingWithSkip(s.logger, []string{"/api/health"}))

	r.Get("/api/health", healthHandler.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.With(loginRateLimit).Post("/register", authHandler.Register)
		r.With(loginRateLimit).Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(authenticate).Get("/me", authHandler.Me)
	})

	r.Route("/api/zikrs", func(r chi.Router) {
		r.Get("/", zikrHandler.List)
		r.With(authenticate, requireAdmin).Post("/", zikrHandler.Create)
		r.With(authenticate, requireAdmin).Put("/{id}", zikrHandler.Update)
		r.With(authenticate, requireAdmin).Delete("/{id}", zikrHandler.Delete)
	})

	r.Route("/api/progress", func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", progressHandler.Log)
		r.Get("/", progressHandler.List)
	})

	r.Get("/api/languages", languageHandler.List)

	return r
}
