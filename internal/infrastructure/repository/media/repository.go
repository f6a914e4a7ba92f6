package media

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/infrastructure/database/entities"
	"registry-hub/admin-api/internal/infrastructure/metrics"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// Repository handles media item persistence. All statements go through GORM's
// parameterized query builder, never through string interpolation.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every media item, newest first.
func (r *Repository) List(ctx context.Context) (items []domain.MediaItem, err error) {
	defer metrics.ObserveStoreOperation("media", "list", time.Now(), &err)

	var rows []entities.MediaItem
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list media items",
			err,
			"media-list-db-001",
		)
	}

	items = make([]domain.MediaItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEntity(row))
	}
	return items, nil
}

// GetByID looks up a single media item by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (item *domain.MediaItem, err error) {
	defer metrics.ObserveStoreOperation("media", "get", time.Now(), &err)

	var row entities.MediaItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"media item not found",
				err,
				"media-get-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get media item",
			err,
			"media-get-db-001",
		)
	}
	obj := mapEntity(row)
	return &obj, nil
}

// Create inserts one row. The engine assigns id and created_at, which GORM
// writes back onto the entity, so no re-select is needed.
func (r *Repository) Create(ctx context.Context, fields domain.Fields) (item *domain.MediaItem, err error) {
	defer metrics.ObserveStoreOperation("media", "create", time.Now(), &err)

	row := entities.MediaItem{
		Title:       fields.Title,
		Kind:        string(fields.Kind),
		URL:         fields.URL,
		Description: fields.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create media item",
			err,
			"media-create-db-001",
		)
	}
	obj := mapEntity(row)
	return &obj, nil
}

// Update overwrites every mutable column in one statement. Optional fields
// passed as nil become NULL, so a full overwrite is always a full overwrite.
func (r *Repository) Update(ctx context.Context, id int64, fields domain.Fields) (item *domain.MediaItem, err error) {
	defer metrics.ObserveStoreOperation("media", "update", time.Now(), &err)

	updates := map[string]interface{}{
		"title":       fields.Title,
		"kind":        string(fields.Kind),
		"url":         fields.URL,
		"description": fields.Description,
	}

	result := r.db.WithContext(ctx).
		Model(&entities.MediaItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update media item",
			result.Error,
			"media-update-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"media item not found",
			nil,
			"media-update-notfound-001",
		)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the row. Deleting an absent id reports NotFound, which makes
// a repeated delete harmless.
func (r *Repository) Delete(ctx context.Context, id int64) (err error) {
	defer metrics.ObserveStoreOperation("media", "delete", time.Now(), &err)

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MediaItem{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete media item",
			result.Error,
			"media-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"media item not found",
			nil,
			"media-delete-notfound-001",
		)
	}
	return nil
}

func mapEntity(row entities.MediaItem) domain.MediaItem {
	return domain.MediaItem{
		ID:          row.ID,
		Title:       row.Title,
		Kind:        domain.Kind(row.Kind),
		URL:         row.URL,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
