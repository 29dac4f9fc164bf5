package galleryapi

import (
	"context"
	"log"
	"net/http"

	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

type Lister interface {
	List(ctx context.Context) ([]artworks.Artwork, error)
}

type Handler struct {
	store Lister
}

func NewHandler(store Lister) *Handler {
	return &Handler{store: store}
}

// List serves the public gallery. A backend failure degrades silently
// to the static fallback set; visitors never see an error.
func (h *Handler) List(c *gin.Context) {
	remote, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("gallery fetch failed, serving fallback only: %v", err)
		remote = nil
	}

	items := gallery.Merged(remote)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}
