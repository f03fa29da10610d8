package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zikrhub/zikrhub/internal/models"
	"github.com/zikrhub/zikrhub/internal/server/storage"
)

// ListZikrs returns active zikrs ordered by id
func (s *Storage) ListZikrs(ctx context.Context) ([]models.Zikr, error) {
	query := `
		SELECT id, arabic, latin, identifier, default_repetitions, is_custom, is_active, created_at, updated_at
		FROM zikrs
		WHERE is_active = 1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zikrs: %w", err)
	}
	defer rows.Close()

	var zikrs []models.Zikr
	for rows.Next() {
		var z models.Zikr
		if err := rows.Scan(
			&z.ID,
			&z.Arabic,
			&z.Latin,
			&z.Identifier,
			&z.DefaultRepetitions,
			&z.IsCustom,
			&z.IsActive,
			&z.CreatedAt,
			&z.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan zikr: %w", err)
		}
		zikrs = append(zikrs, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate zikrs: %w", err)
	}

	return zikrs, nil
}

// GetZikr retrieves an active zikr by id
func (s *Storage) GetZikr(ctx context.Context, id int64) (*models.Zikr, error) {
	query := `
		SELECT id, arabic, latin, identifier, default_repetitions, is_custom, is_active, created_at, updated_at
		FROM zikrs
		WHERE id = ? AND is_active = 1
	`

	var z models.Zikr
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&z.ID,
		&z.Arabic,
		&z.Latin,
		&z.Identifier,
		&z.DefaultRepetitions,
		&z.IsCustom,
		&z.IsActive,
		&z.CreatedAt,
		&z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrZikrNotFound
		}
		return nil, fmt.Errorf("failed to get zikr: %w", err)
	}

	return &z, nil
}

// CreateZikr inserts a new zikr and returns it with the assigned id
func (s *Storage) CreateZikr(ctx context.Context, zikr *models.Zikr) (*models.Zikr, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO zikrs (arabic, latin, identifier, default_repetitions, is_custom, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		zikr.Arabic,
		zikr.Latin,
		zikr.Identifier,
		zikr.DefaultRepetitions,
		zikr.IsCustom,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert zikr: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	created := *zikr
	created.ID = id
	created.IsActive = true
	created.CreatedAt = now
	created.UpdatedAt = now

	return &created, nil
}

// UpdateZikr updates an active zikr's content fields
func (s *Storage) UpdateZikr(ctx context.Context, zikr *models.Zikr) error {
	query := `
		UPDATE zikrs
		SET arabic = ?, latin = ?, identifier = ?, default_repetitions = ?, updated_at = ?
		WHERE id = ? AND is_active = 1
	`

	result, err := s.db.ExecContext(ctx, query,
		zikr.Arabic,
		zikr.Latin,
		zikr.Identifier,
		zikr.DefaultRepetitions,
		time.Now().UTC(),
		zikr.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update zikr: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrZikrNotFound
	}

	return nil
}

// DeactivateZikr soft-deletes a zikr
func (s *Storage) DeactivateZikr(ctx context.Context, id int64) error {
	query := `
		UPDATE zikrs
		SET is_active = 0, updated_at = ?
		WHERE id = ? AND is_active = 1
	`

	result, err := s.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate zikr: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrZikrNotFound
	}

	return nil
}

// ListLanguages returns active languages ordered by name
func (s *Storage) ListLanguages(ctx context.Context) ([]models.Language, error) {
	query := `
		SELECT code, name, native_name, rtl
		FROM languages
		WHERE is_active = 1
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	defer rows.Close()

	var languages []models.Language
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.Code, &l.Name, &l.NativeName, &l.RTL); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate languages: %w", err)
	}

	return languages, nil
}
