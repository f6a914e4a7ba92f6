package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/utils/platformerrors"
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	List(ctx context.Context) ([]MediaItem, error)
	GetByID(ctx context.Context, id int64) (*MediaItem, error)
	Create(ctx context.Context, fields Fields) (*MediaItem, error)
	Update(ctx context.Context, id int64, fields Fields) (*MediaItem, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes media item operations to the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]MediaItem, error)
	GetByID(ctx context.Context, id int64) (*MediaItem, error)
	Create(ctx context.Context, fields Fields) (*MediaItem, error)
	Update(ctx context.Context, id int64, fields Fields) (*MediaItem, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService constructs the media service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "media-service").Logger(),
	}
}

func (s *service) List(ctx context.Context) ([]MediaItem, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*MediaItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, fields Fields) (*MediaItem, error) {
	normalized, err := validateFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, normalized)
}

func (s *service) Update(ctx context.Context, id int64, fields Fields) (*MediaItem, error) {
	normalized, err := validateFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, normalized)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateFields enforces the record invariant: title, kind and url are
// non-empty and kind is a member of the enumeration.
func validateFields(ctx context.Context, fields Fields) (Fields, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.URL = strings.TrimSpace(fields.URL)
	fields.Kind = Kind(strings.ToLower(strings.TrimSpace(string(fields.Kind))))

	if fields.Title == "" {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"title is required",
			nil,
			"media-validate-title-001",
		)
	}
	if fields.Kind == "" {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"kind is required",
			nil,
			"media-validate-kind-001",
		)
	}
	if !fields.Kind.Valid() {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("kind must be one of %s, %s, %s", KindImage, KindVideo, KindDocument),
			nil,
			"media-validate-kind-002",
		)
	}
	if fields.URL == "" {
		return fields, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"url is required",
			nil,
			"media-validate-url-001",
		)
	}
	return fields, nil
}
