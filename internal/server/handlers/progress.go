package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
	"github.com/zikrhub/zikrhub/pkg/api"
)

// dateFormat формат дня для записей прогресса
const dateFormat = "2006-01-02"

// ProgressHandler обрабатывает дневные счетчики пользователя
type ProgressHandler struct {
	logger   *slog.Logger
	progress storage.ProgressStorage
}

// NewProgressHandler создает новый handler прогресса
func NewProgressHandler(logger *slog.Logger, progress storage.ProgressStorage) *ProgressHandler {
	return &ProgressHandler{
		logger:   logger,
		progress: progress,
	}
}

// Log обрабатывает POST /api/progress
// Записывает текущий итог за день по одному зикру (upsert)
func (h *ProgressHandler) Log(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := UserFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ZikrID <= 0 {
		sendError(h.logger, w, "zikrId is required", http.StatusBadRequest)
		return
	}
	if req.Count < 0 {
		sendError(h.logger, w, "count must not be negative", http.StatusBadRequest)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(dateFormat)
	} else if _, err := time.Parse(dateFormat, date); err != nil {
		sendError(h.logger, w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	entry, err := h.progress.UpsertProgress(ctx, &models.ProgressEntry{
		UserID: user.ID,
		ZikrID: req.ZikrID,
		Date:   date,
		Count:  req.Count,
		Target: req.Target,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save progress",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to save progress", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, entry, http.StatusOK)
}

// List обрабатывает GET /api/progress?date=YYYY-MM-DD
// Возвращает записи текущего пользователя за день (по умолчанию сегодня)
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := UserFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format(dateFormat)
	} else if _, err := time.Parse(dateFormat, date); err != nil {
		sendError(h.logger, w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	entries, err := h.progress.ListProgressByDate(ctx, user.ID, date)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list progress",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch progress", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []models.ProgressEntry{}
	}

	sendData(h.logger, w, entries, http.StatusOK)
}
