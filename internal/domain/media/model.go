package media

import "time"

// Kind enumerates the media item categories.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	switch k {
	case KindImage, KindVideo, KindDocument:
		return true
	}
	return false
}

// MediaItem represents a gallery record pointing at an external asset.
type MediaItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Kind        Kind      `json:"kind"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fields carries the mutable columns of a media item. Description is optional
// and persists as NULL when nil.
type Fields struct {
	Title       string
	Kind        Kind
	URL         string
	Description *string
}
