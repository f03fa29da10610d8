package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
	"github.com/zikrhub/zikrhub/pkg/api"
)

// ZikrHandler обрабатывает каталог зикров
type ZikrHandler struct {
	logger *slog.Logger
	zikrs  storage.ZikrStorage
}

// NewZikrHandler создает новый handler каталога
func NewZikrHandler(logger *slog.Logger, zikrs storage.ZikrStorage) *ZikrHandler {
	return &ZikrHandler{
		logger: logger,
		zikrs:  zikrs,
	}
}

// List обрабатывает GET /api/zikrs
// Публичный список активных зикров
func (h *ZikrHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	zikrs, err := h.zikrs.ListZikrs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list zikrs", slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch zikrs", http.StatusInternalServerError)
		return
	}

	if zikrs == nil {
		zikrs = []models.Zikr{}
	}

	sendData(h.logger, w, zikrs, http.StatusOK)
}

// Create обрабатывает POST /api/zikrs (admin)
func (h *ZikrHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeZikr(w, r)
	if !ok {
		return
	}

	created, err := h.zikrs.CreateZikr(ctx, &models.Zikr{
		Arabic:             req.Arabic,
		Latin:              req.Latin,
		Identifier:         req.Identifier,
		DefaultRepetitions: req.DefaultRepetitions,
		IsCustom:           true,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create zikr", slog.Any("error", err))
		sendError(h.logger, w, "failed to save zikr", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "zikr created",
		slog.Int64("zikr_id", created.ID),
		slog.String("identifier", created.Identifier))

	sendData(h.logger, w, created, http.StatusCreated)
}

// Update обрабатывает PUT /api/zikrs/{id} (admin)
func (h *ZikrHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(h.logger, w, "invalid zikr id", http.StatusBadRequest)
		return
	}

	req, ok := h.decodeZikr(w, r)
	if !ok {
		return
	}

	zikr := &models.Zikr{
		ID:                 id,
		Arabic:             req.Arabic,
		Latin:              req.Latin,
		Identifier:         req.Identifier,
		DefaultRepetitions: req.DefaultRepetitions,
	}

	if err := h.zikrs.UpdateZikr(ctx, zikr); err != nil {
		if errors.Is(err, storage.ErrZikrNotFound) {
			sendError(h.logger, w, "zikr not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update zikr", slog.Any("error", err))
		sendError(h.logger, w, "failed to update zikr", http.StatusInternalServerError)
		return
	}

	sendMessage(h.logger, w, "zikr updated successfully", http.StatusOK)
}

// Delete обрабатывает DELETE /api/zikrs/{id} (admin)
// Зикр не удаляется физически, только деактивируется
func (h *ZikrHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(h.logger, w, "invalid zikr id", http.StatusBadRequest)
		return
	}

	if err := h.zikrs.DeactivateZikr(ctx, id); err != nil {
		if errors.Is(err, storage.ErrZikrNotFound) {
			sendError(h.logger, w, "zikr not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to deactivate zikr", slog.Any("error", err))
		sendError(h.logger, w, "failed to delete zikr", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "zikr deactivated", slog.Int64("zikr_id", id))

	sendMessage(h.logger, w, "zikr deleted successfully", http.StatusOK)
}

func (h *ZikrHandler) decodeZikr(w http.ResponseWriter, r *http.Request) (api.ZikrRequest, bool) {
	var req api.ZikrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return req, false
	}

	if req.Arabic == "" || req.Latin == "" || req.Identifier == "" {
		sendError(h.logger, w, "missing required fields: arabic, latin, identifier", http.StatusBadRequest)
		return req, false
	}

	if req.DefaultRepetitions <= 0 {
		req.DefaultRepetitions = 33
	}

	return req, true
}
