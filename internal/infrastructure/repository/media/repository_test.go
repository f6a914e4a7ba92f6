package media_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/infrastructure/database/entities"
	repo "registry-hub/admin-api/internal/infrastructure/repository/media"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:media_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MediaItem{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetPreservesKind(t *testing.T) {
	r := repo.NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.Fields{
		Title: "Demo",
		Kind:  domain.KindVideo,
		URL:   "https://youtu.be/abc123",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindVideo, got.Kind)
	assert.Equal(t, "Demo", got.Title)
	assert.Equal(t, "https://youtu.be/abc123", got.URL)
	assert.Nil(t, got.Description)
}

func TestListNewestFirst(t *testing.T) {
	r := repo.NewRepository(newTestDB(t))
	ctx := context.Background()

	var ids []int64
	for i, kind := range []domain.Kind{domain.KindImage, domain.KindVideo, domain.KindDocument} {
		created, err := r.Create(ctx, domain.Fields{
			Title: fmt.Sprintf("Item %d", i),
			Kind:  kind,
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[0], items[2].ID)
}

func TestUpdateOverwritesDescriptionToNull(t *testing.T) {
	r := repo.NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.Fields{
		Title:       "Demo",
		Kind:        domain.KindImage,
		URL:         "https://example.com/a.png",
		Description: strPtr("first cut"),
	})
	require.NoError(t, err)

	updated, err := r.Update(ctx, created.ID, domain.Fields{
		Title: "Demo v2",
		Kind:  domain.KindImage,
		URL:   "https://example.com/b.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Demo v2", updated.Title)
	assert.Nil(t, updated.Description)
}

func TestOperationsOnMissingID(t *testing.T) {
	r := repo.NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, 42)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))

	_, err = r.Update(ctx, 42, domain.Fields{Title: "x", Kind: domain.KindImage, URL: "https://example.com"})
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))

	err = r.Delete(ctx, 42)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}

func TestDeleteRemovesRow(t *testing.T) {
	r := repo.NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.Fields{
		Title: "Doc",
		Kind:  domain.KindDocument,
		URL:   "https://example.com/doc.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
