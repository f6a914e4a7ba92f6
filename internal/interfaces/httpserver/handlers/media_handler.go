package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/interfaces/httpserver/requests"
	"registry-hub/admin-api/internal/interfaces/httpserver/responses"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// MediaHandler exposes the media item CRUD endpoints.
type MediaHandler struct {
	service media.Service
	log     zerolog.Logger
}

func NewMediaHandler(service media.Service, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		log:     log.With().Str("component", "media-handler").Logger(),
	}
}

// List returns every media item as a JSON array.
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to list media items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single media item by id.
func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "media-route-id-001")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to get media item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create inserts a new media item and returns it with the assigned id.
func (h *MediaHandler) Create(c *gin.Context) {
	var req requests.MediaItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid request body", "body must be a JSON media object", "media-route-body-001")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to create media item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update overwrites every mutable field of an existing media item.
func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "media-route-id-002")
	if !ok {
		return
	}

	var req requests.MediaItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid request body", "body must be a JSON media object", "media-route-body-002")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to update media item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes a media item.
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "media-route-id-003")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.HandleError(c, h.log, err, "failed to delete media item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
