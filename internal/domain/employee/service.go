package employee

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/utils/platformerrors"
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	Create(ctx context.Context, fields Fields) (*Employee, error)
	Update(ctx context.Context, id int64, fields Fields) (*Employee, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes employee operations to the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	Create(ctx context.Context, fields Fields) (*Employee, error)
	Update(ctx context.Context, id int64, fields Fields) (*Employee, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService constructs the employee service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "employee-service").Logger(),
	}
}

func (s *service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, fields Fields) (*Employee, error) {
	normalized, err := validateFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, normalized)
}

func (s *service) Update(ctx context.Context, id int64, fields Fields) (*Employee, error) {
	normalized, err := validateFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, normalized)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateFields enforces the record invariant: name and role are non-empty.
// No repository call happens when validation fails.
func validateFields(ctx context.Context, fields Fields) (Fields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Role = strings.TrimSpace(fields.Role)

	if fields.Name == "" {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"name is required",
			nil,
			"employee-validate-name-001",
		)
	}
	if fields.Role == "" {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"role is required",
			nil,
			"employee-validate-role-001",
		)
	}
	return fields, nil
}
