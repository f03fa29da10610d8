package storage

import (
	"context"

	"github.com/zikrhub/zikrhub/internal/models"
)

// ZikrStorage defines interface for the zikr catalog
type ZikrStorage interface {
	// ListZikrs returns active zikrs ordered by id
	ListZikrs(ctx context.Context) ([]models.Zikr, error)

	// GetZikr retrieves an active zikr by id.
	// Returns ErrZikrNotFound if it doesn't exist or is deactivated.
	GetZikr(ctx context.Context, id int64) (*models.Zikr, error)

	// CreateZikr inserts a new zikr and returns it with the assigned id
	CreateZikr(ctx context.Context, zikr *models.Zikr) (*models.Zikr, error)

	// UpdateZikr updates an active zikr's content fields.
	// Returns ErrZikrNotFound if it doesn't exist or is deactivated.
	UpdateZikr(ctx context.Context, zikr *models.Zikr) error

	// DeactivateZikr soft-deletes a zikr.
	// Returns ErrZikrNotFound if it doesn't exist or is already deactivated.
	DeactivateZikr(ctx context.Context, id int64) error
}

// LanguageStorage defines interface for supported UI languages
type LanguageStorage interface {
	// ListLanguages returns active languages ordered by name
	ListLanguages(ctx context.Context) ([]models.Language, error)
}

// ProgressStorage defines interface for per-day zikr counters
type ProgressStorage interface {
	// UpsertProgress inserts the entry or, when a row for the same
	// (user, zikr, date) exists, replaces its count and target
	UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error)

	// ListProgressByDate returns the user's entries for a given day
	ListProgressByDate(ctx context.Context, userID int64, date string) ([]models.ProgressEntry, error)
}
