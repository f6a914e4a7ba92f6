package employee

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "registry-hub/admin-api/internal/domain/employee"
	"registry-hub/admin-api/internal/infrastructure/database/entities"
	"registry-hub/admin-api/internal/infrastructure/metrics"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// Repository handles employee persistence. All statements go through GORM's
// parameterized query builder, never through string interpolation.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every employee, newest first.
func (r *Repository) List(ctx context.Context) (items []domain.Employee, err error) {
	defer metrics.ObserveStoreOperation("employee", "list", time.Now(), &err)

	var rows []entities.Employee
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list employees",
			err,
			"employee-list-db-001",
		)
	}

	items = make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEntity(row))
	}
	return items, nil
}

// GetByID looks up a single employee by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (item *domain.Employee, err error) {
	defer metrics.ObserveStoreOperation("employee", "get", time.Now(), &err)

	var row entities.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"employee not found",
				err,
				"employee-get-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get employee",
			err,
			"employee-get-db-001",
		)
	}
	obj := mapEntity(row)
	return &obj, nil
}

// Create inserts one row. The engine assigns id and created_at, which GORM
// writes back onto the entity, so no re-select is needed.
func (r *Repository) Create(ctx context.Context, fields domain.Fields) (item *domain.Employee, err error) {
	defer metrics.ObserveStoreOperation("employee", "create", time.Now(), &err)

	row := entities.Employee{
		Name:    fields.Name,
		Address: fields.Address,
		Age:     fields.Age,
		Role:    fields.Role,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create employee",
			err,
			"employee-create-db-001",
		)
	}
	obj := mapEntity(row)
	return &obj, nil
}

// Update overwrites every mutable column in one statement. Optional fields
// passed as nil become NULL, so a full overwrite is always a full overwrite.
func (r *Repository) Update(ctx context.Context, id int64, fields domain.Fields) (item *domain.Employee, err error) {
	defer metrics.ObserveStoreOperation("employee", "update", time.Now(), &err)

	updates := map[string]interface{}{
		"name":    fields.Name,
		"address": fields.Address,
		"age":     fields.Age,
		"role":    fields.Role,
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Employee{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update employee",
			result.Error,
			"employee-update-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"employee not found",
			nil,
			"employee-update-notfound-001",
		)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the row. Deleting an absent id reports NotFound, which makes
// a repeated delete harmless.
func (r *Repository) Delete(ctx context.Context, id int64) (err error) {
	defer metrics.ObserveStoreOperation("employee", "delete", time.Now(), &err)

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Employee{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete employee",
			result.Error,
			"employee-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"employee not found",
			nil,
			"employee-delete-notfound-001",
		)
	}
	return nil
}

func mapEntity(row entities.Employee) domain.Employee {
	return domain.Employee{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		Age:       row.Age,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}
}
