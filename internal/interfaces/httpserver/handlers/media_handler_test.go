package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/interfaces/httpserver/handlers"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// MockMediaService is a mock implementation of media.Service for testing.
type MockMediaService struct {
	ListFunc    func(ctx context.Context) ([]media.MediaItem, error)
	GetByIDFunc func(ctx context.Context, id int64) (*media.MediaItem, error)
	CreateFunc  func(ctx context.Context, fields media.Fields) (*media.MediaItem, error)
	UpdateFunc  func(ctx context.Context, id int64, fields media.Fields) (*media.MediaItem, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockMediaService) List(ctx context.Context) ([]media.MediaItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockMediaService) GetByID(ctx context.Context, id int64) (*media.MediaItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMediaService) Create(ctx context.Context, fields media.Fields) (*media.MediaItem, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return nil, nil
}

func (m *MockMediaService) Update(ctx context.Context, id int64, fields media.Fields) (*media.MediaItem, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockMediaService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func setupMediaRouter(svc media.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewMediaHandler(svc, zerolog.Nop())

	r := gin.New()
	group := r.Group("/api/media")
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	return r
}

func TestMediaCreateReturnsExactKind(t *testing.T) {
	svc := &MockMediaService{
		CreateFunc: func(ctx context.Context, fields media.Fields) (*media.MediaItem, error) {
			return &media.MediaItem{ID: 3, Title: fields.Title, Kind: fields.Kind, URL: fields.URL}, nil
		},
	}
	payload := map[string]interface{}{"title": "Demo", "kind": "video", "url": "https://youtu.be/abc123"}
	w := performRequest(setupMediaRouter(svc), http.MethodPost, "/api/media", payload)

	require.Equal(t, http.StatusCreated, w.Code)

	var item media.MediaItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, media.KindVideo, item.Kind)
	assert.Equal(t, int64(3), item.ID)
}

func TestMediaCreateUnknownKindIs400(t *testing.T) {
	svc := &MockMediaService{
		CreateFunc: func(ctx context.Context, fields media.Fields) (*media.MediaItem, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation, "kind must be one of image, video, document", nil, "media-validate-kind-002")
		},
	}
	payload := map[string]interface{}{"title": "Demo", "kind": "audio", "url": "https://example.com"}
	w := performRequest(setupMediaRouter(svc), http.MethodPost, "/api/media", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["detalle"], "kind must be one of")
}

func TestMediaGetNotFound(t *testing.T) {
	svc := &MockMediaService{
		GetByIDFunc: func(ctx context.Context, id int64) (*media.MediaItem, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "media item not found", nil, "media-get-notfound-001")
		},
	}
	w := performRequest(setupMediaRouter(svc), http.MethodGet, "/api/media/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "media item not found", body["detalle"])
}

func TestMediaListAndDelete(t *testing.T) {
	desc := "intro clip"
	svc := &MockMediaService{
		ListFunc: func(ctx context.Context) ([]media.MediaItem, error) {
			return []media.MediaItem{
				{ID: 2, Title: "B", Kind: media.KindImage, URL: "https://example.com/b.png", Description: &desc},
				{ID: 1, Title: "A", Kind: media.KindDocument, URL: "https://example.com/a.pdf"},
			}, nil
		},
	}
	r := setupMediaRouter(svc)

	w := performRequest(r, http.MethodGet, "/api/media", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []media.MediaItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "intro clip", *items[0].Description)
	assert.Nil(t, items[1].Description)

	w = performRequest(r, http.MethodDelete, "/api/media/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
