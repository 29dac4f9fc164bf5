package artworksapi

import "portfolio-app/internal/domain/artworks"

// SubmitForm is the multipart body of a create or update. The image part
// rides alongside under the "image" field name.
type SubmitForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type CollectionResponse struct {
	Count int                `json:"count"`
	Items []artworks.Artwork `json:"items"`
}
