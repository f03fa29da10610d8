package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zikrhub/zikrhub/internal/models"
	storageerrors "github.com/zikrhub/zikrhub/internal/server/storage"
)

func TestStorage_ListZikrs_Seeded(t *testing.T) {
	storage := setupTestStorage(t)

	zikrs, err := storage.ListZikrs(context.Background())
	require.NoError(t, err)
	require.Len(t, zikrs, 10)

	// порядок по id: первым идет subhan_allah
	assert.Equal(t, "subhan_allah", zikrs[0].Identifier)
	assert.Equal(t, "Subhan Allah", zikrs[0].Latin)
	assert.Equal(t, 33, zikrs[0].DefaultRepetitions)
	assert.False(t, zikrs[0].IsCustom)

	for i := 1; i < len(zikrs); i++ {
		assert.Greater(t, zikrs[i].ID, zikrs[i-1].ID)
	}
}

func TestStorage_CreateAndGetZikr(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	created, err := storage.CreateZikr(ctx, &models.Zikr{
		Arabic:             "يَا حَيُّ يَا قَيُّومُ",
		Latin:              "Ya Hayyu Ya Qayyum",
		Identifier:         "ya_hayyu_ya_qayyum",
		DefaultRepetitions: 40,
		IsCustom:           true,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := storage.GetZikr(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ya_hayyu_ya_qayyum", got.Identifier)
	assert.Equal(t, 40, got.DefaultRepetitions)
	assert.True(t, got.IsCustom)
}

func TestStorage_GetZikr_NotFound(t *testing.T) {
	storage := setupTestStorage(t)

	_, err := storage.GetZikr(context.Background(), 9999)
	assert.ErrorIs(t, err, storageerrors.ErrZikrNotFound)
}

func TestStorage_UpdateZikr(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	created, err := storage.CreateZikr(ctx, &models.Zikr{
		Arabic:             "ذكر",
		Latin:              "Before",
		Identifier:         "before",
		DefaultRepetitions: 10,
		IsCustom:           true,
	})
	require.NoError(t, err)

	created.Latin = "After"
	created.DefaultRepetitions = 99
	require.NoError(t, storage.UpdateZikr(ctx, created))

	got, err := storage.GetZikr(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Latin)
	assert.Equal(t, 99, got.DefaultRepetitions)

	missing := *created
	missing.ID = 9999
	assert.ErrorIs(t, storage.UpdateZikr(ctx, &missing), storageerrors.ErrZikrNotFound)
}

func TestStorage_DeactivateZikr(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	created, err := storage.CreateZikr(ctx, &models.Zikr{
		Arabic:     "ذكر",
		Latin:      "Temp",
		Identifier: "temp",
		IsCustom:   true,
	})
	require.NoError(t, err)

	require.NoError(t, storage.DeactivateZikr(ctx, created.ID))

	// soft delete: строка остается, но невидима для чтения
	_, err = storage.GetZikr(ctx, created.ID)
	assert.ErrorIs(t, err, storageerrors.ErrZikrNotFound)

	zikrs, err := storage.ListZikrs(ctx)
	require.NoError(t, err)
	for _, z := range zikrs {
		assert.NotEqual(t, created.ID, z.ID)
	}

	// повторная деактивация уже не находит активной строки
	assert.ErrorIs(t, storage.DeactivateZikr(ctx, created.ID), storageerrors.ErrZikrNotFound)
}

func TestStorage_ListLanguages_Seeded(t *testing.T) {
	storage := setupTestStorage(t)

	languages, err := storage.ListLanguages(context.Background())
	require.NoError(t, err)
	require.Len(t, languages, 4)

	byCode := make(map[string]models.Language, len(languages))
	for _, l := range languages {
		byCode[l.Code] = l
	}

	require.Contains(t, byCode, "ar")
	assert.True(t, byCode["ar"].RTL)
	assert.Equal(t, "العربية", byCode["ar"].NativeName)

	require.Contains(t, byCode, "en")
	assert.False(t, byCode["en"].RTL)
}
