package requests

import (
	"registry-hub/admin-api/internal/domain/media"
)

// MediaItemInput is the payload for creating or updating a media item.
type MediaItemInput struct {
	Title       string  `json:"title"`
	Kind        string  `json:"kind"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// ToFields converts the request to domain fields.
func (r *MediaItemInput) ToFields() media.Fields {
	return media.Fields{
		Title:       r.Title,
		Kind:        media.Kind(r.Kind),
		URL:         r.URL,
		Description: r.Description,
	}
}
