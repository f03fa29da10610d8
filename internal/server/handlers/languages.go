package handlers

import (
	"log/slog"
	"net/http"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
)

// LanguageHandler обрабатывает список поддерживаемых языков
type LanguageHandler struct {
	logger    *slog.Logger
	languages storage.LanguageStorage
}

// NewLanguageHandler создает новый handler языков
func NewLanguageHandler(logger *slog.Logger, languages storage.LanguageStorage) *LanguageHandler {
	return &LanguageHandler{
		logger:    logger,
		languages: languages,
	}
}

// List обрабатывает GET /api/languages
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	languages, err := h.languages.ListLanguages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list languages", slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch languages", http.StatusInternalServerError)
		return
	}

	if languages == nil {
		languages = []models.Language{}
	}

	sendData(h.logger, w, languages, http.StatusOK)
}
