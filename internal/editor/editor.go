// Package editor drives the create-vs-edit artwork form lifecycle: field
// state, the selected replacement file, the preview reference, and the
// submit path that orders image upload strictly before the metadata
// write.
package editor

import (
	"context"
	"errors"
	"strings"

	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/gateway"
	"portfolio-app/internal/imageprep"
)

// ErrSubmitInFlight rejects a second submit while one is pending.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Records is the slice of the gateway the editor writes through.
type Records interface {
	Create(ctx context.Context, in gateway.NewArtwork) (artworks.Artwork, error)
	Update(ctx context.Context, id string, p gateway.Patch) (artworks.Artwork, error)
}

// Uploader stores a prepared image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, suggestedName string) (string, error)
}

// File is a locally selected image awaiting upload.
type File struct {
	Name string
	Data []byte
}

// mode is the tagged create-vs-edit variant. Using a variant instead of
// a nullable id removes the "is it in edit mode?" class of bugs.
type mode interface{ isMode() }

type createMode struct{}

type editMode struct{ record artworks.Artwork }

func (createMode) isMode() {}
func (editMode) isMode()   {}

// Draft is the transient form state. It is never persisted; a draft is
// reset on successful submit or explicit cancel and preserved verbatim
// on failure so the user can retry.
type Draft struct {
	records Records
	images  Uploader

	mode        mode
	Title       string
	Description string

	file       *File
	previewURL string

	submitting bool
}

func NewDraft(records Records, images Uploader) *Draft {
	return &Draft{
		records: records,
		images:  images,
		mode:    createMode{},
	}
}

// BeginEdit hydrates the draft from an existing record and clears any
// previously selected file.
func (d *Draft) BeginEdit(record artworks.Artwork) {
	d.mode = editMode{record: record}
	d.Title = record.Title
	d.Description = record.Description
	d.file = nil
	d.previewURL = record.ImageURL
}

// Cancel discards the draft and returns to an empty create form.
func (d *Draft) Cancel() {
	d.reset()
}

// PickFile selects a new image; the preview switches to a local
// reference to the selection.
func (d *Draft) PickFile(name string, data []byte) {
	d.file = &File{Name: name, Data: data}
	d.previewURL = "local:" + name
}

// ClearFile undoes the selection, restoring the edit target's remote
// image as the preview (or nothing in create mode).
func (d *Draft) ClearFile() {
	d.file = nil
	if m, ok := d.mode.(editMode); ok {
		d.previewURL = m.record.ImageURL
	} else {
		d.previewURL = ""
	}
}

// Editing reports the edit-target id, or "" in create mode.
func (d *Draft) Editing() string {
	if m, ok := d.mode.(editMode); ok {
		return m.record.ID
	}
	return ""
}

// PreviewURL is the current preview reference: a local marker for a
// fresh selection, the remote image_url in edit mode, or empty.
func (d *Draft) PreviewURL() string { return d.previewURL }

// Submit validates the draft, uploads the selected image if any, and
// writes the metadata record. The upload happens first so no record ever
// references a URL that failed to store; the inverse (an orphaned blob
// after a failed metadata write) is an accepted gap. On success the
// draft resets to create mode; on failure it is left untouched.
func (d *Draft) Submit(ctx context.Context) (artworks.Artwork, error) {
	if d.submitting {
		return artworks.Artwork{}, ErrSubmitInFlight
	}
	d.submitting = true
	defer func() { d.submitting = false }()

	if err := d.validate(); err != nil {
		return artworks.Artwork{}, err
	}

	var uploadedURL string
	if d.file != nil {
		prepared := imageprep.Prepare(d.file.Data, d.file.Name)
		url, err := d.images.Upload(ctx, prepared.Data, prepared.Name)
		if err != nil {
			return artworks.Artwork{}, err
		}
		uploadedURL = url
	}

	var (
		saved artworks.Artwork
		err   error
	)
	switch m := d.mode.(type) {
	case editMode:
		patch := gateway.Patch{
			Title:       &d.Title,
			Description: &d.Description,
		}
		// No new file: image_url stays out of the patch entirely.
		if uploadedURL != "" {
			patch.ImageURL = &uploadedURL
		}
		saved, err = d.records.Update(ctx, m.record.ID, patch)
	default:
		saved, err = d.records.Create(ctx, gateway.NewArtwork{
			Title:       d.Title,
			Description: d.Description,
			ImageURL:    uploadedURL,
		})
	}
	if err != nil {
		return artworks.Artwork{}, err
	}

	d.reset()
	return saved, nil
}

func (d *Draft) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &gateway.ValidationError{Field: "title"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &gateway.ValidationError{Field: "description"}
	}
	if _, editing := d.mode.(editMode); !editing && d.file == nil {
		return &gateway.ValidationError{Field: "image"}
	}
	return nil
}

func (d *Draft) reset() {
	d.mode = createMode{}
	d.Title = ""
	d.Description = ""
	d.file = nil
	d.previewURL = ""
}
