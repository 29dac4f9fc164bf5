package artworksapi

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/editor"
	"portfolio-app/internal/gateway"
	"portfolio-app/internal/inventory"

	"github.com/gin-gonic/gin"
)

// Store is the record side of the gateway the handlers go through.
type Store interface {
	List(ctx context.Context) ([]artworks.Artwork, error)
	Get(ctx context.Context, id string) (artworks.Artwork, error)
	Create(ctx context.Context, in gateway.NewArtwork) (artworks.Artwork, error)
	Update(ctx context.Context, id string, p gateway.Patch) (artworks.Artwork, error)
	Delete(ctx context.Context, id string) error
}

// ImageStore is the blob side.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, suggestedName string) (string, error)
	RemoveQuiet(ctx context.Context, url string)
}

type Handler struct {
	store  Store
	images ImageStore
}

func NewHandler(store Store, images ImageStore) *Handler {
	return &Handler{store: store, images: images}
}

// List returns the collection filtered and sorted per query params.
func (h *Handler) List(c *gin.Context) {
	ex := inventory.NewExplorer(h.store, h.images)
	if err := ex.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	term := c.Query("search")
	key := inventory.ParseSortKey(c.DefaultQuery("sort", "newest"))
	items := inventory.Process(ex.Items(), term, key)

	c.JSON(http.StatusOK, CollectionResponse{Count: len(items), Items: items})
}

// Create publishes a new piece: multipart title/description plus a
// required image part.
func (h *Handler) Create(c *gin.Context) {
	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := editor.NewDraft(h.store, h.images)
	draft.Title = form.Title
	draft.Description = form.Description

	if err := pickUploadedFile(c, draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}

	saved, err := draft.Submit(c.Request.Context())
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Update edits an existing piece. A missing image part means the stored
// image_url stays as it is.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	record, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := editor.NewDraft(h.store, h.images)
	draft.BeginEdit(record)
	draft.Title = form.Title
	draft.Description = form.Description

	if err := pickUploadedFile(c, draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return
	}

	saved, err := draft.Submit(c.Request.Context())
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Delete removes a piece after explicit confirmation, cleans up its
// stored image best-effort, and returns the refreshed collection.
func (h *Handler) Delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirm=true"})
		return
	}

	ex := inventory.NewExplorer(h.store, h.images)
	if err := ex.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	if err := ex.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, CollectionResponse{Count: len(ex.Items()), Items: ex.Items()})
}

// pickUploadedFile feeds the optional "image" part into the draft.
func pickUploadedFile(c *gin.Context, draft *editor.Draft) error {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return err
	}

	data, err := readAll(fh)
	if err != nil {
		return err
	}
	draft.PickFile(fh.Filename, data)
	return nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// writeSubmitError maps the gateway taxonomy onto responses. The
// not-found message deliberately does not distinguish a missing row
// from a policy rejection; the storage layer cannot tell them apart.
func writeSubmitError(c *gin.Context, err error) {
	var validation *gateway.ValidationError
	var upload *gateway.UploadError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, gateway.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found or not permitted"})
	case errors.As(err, &upload):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed. Your entries were kept; please try again."})
	case errors.Is(err, editor.ErrSubmitInFlight), errors.Is(err, inventory.ErrDeleteInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Another operation is still running"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save artwork: " + err.Error()})
	}
}
