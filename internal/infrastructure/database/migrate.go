package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"registry-hub/admin-api/internal/infrastructure/database/entities"
)

// AutoMigrate idempotently creates the backing tables if absent. Safe to call
// on every process start.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Employee{}, &entities.MediaItem{}); err != nil {
		return err
	}
	log.Info().Msg("applied employee and media item migrations")
	return nil
}
