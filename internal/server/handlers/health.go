package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// HealthData представляет ответ health check
type HealthData struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendData(h.logger, w, HealthData{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
