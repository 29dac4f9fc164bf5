// Package gallery assembles the public-facing collection: live records
// first, the static fallback set after, so the page always has content.
package gallery

import (
	"time"

	"portfolio-app/internal/domain/artworks"
)

// Item is the public view of a piece. Fallback entries carry no
// timestamp.
type Item struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func fromArtwork(a artworks.Artwork) Item {
	created := a.CreatedAt
	return Item{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		CreatedAt:   &created,
	}
}

// Merged places live records ahead of the fallback set.
func Merged(remote []artworks.Artwork) []Item {
	out := make([]Item, 0, len(remote)+len(fallbackItems))
	for _, a := range remote {
		out = append(out, fromArtwork(a))
	}
	return append(out, Fallback()...)
}
