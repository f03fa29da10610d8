package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
)

// UpsertProgress inserts or replaces the day counter for (user, zikr, date).
// Клиент присылает текущие итоги за день, поэтому replace, а не сложение.
func (s *Storage) UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO progress_entries (user_id, zikr_id, date, count, target, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, zikr_id, date) DO UPDATE
		SET count = excluded.count, target = excluded.target, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query,
		entry.UserID,
		entry.ZikrID,
		entry.Date,
		entry.Count,
		entry.Target,
		now,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	// id мог быть назначен и прошлой вставкой, перечитываем строку
	selectQuery := `
		SELECT id, user_id, zikr_id, date, count, target, updated_at
		FROM progress_entries
		WHERE user_id = ? AND zikr_id = ? AND date = ?
	`

	saved := &models.ProgressEntry{}
	err := s.db.QueryRowContext(ctx, selectQuery, entry.UserID, entry.ZikrID, entry.Date).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.ZikrID,
		&saved.Date,
		&saved.Count,
		&saved.Target,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reread progress: %w", err)
	}

	return saved, nil
}

// ListProgressByDate returns the user's entries for a given day
func (s *Storage) ListProgressByDate(ctx context.Context, userID int64, date string) ([]models.ProgressEntry, error) {
	query := `
		SELECT id, user_id, zikr_id, date, count, target, updated_at
		FROM progress_entries
		WHERE user_id = ? AND date = ?
		ORDER BY zikr_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ZikrID, &e.Date, &e.Count, &e.Target, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress entries: %w", err)
	}

	return entries, nil
}
