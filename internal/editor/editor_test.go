package editor

import (
	"context"
	"errors"
	"testing"

	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecords struct {
	created []gateway.NewArtwork
	updated map[string]gateway.Patch

	createErr error
	updateErr error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{updated: map[string]gateway.Patch{}}
}

func (f *fakeRecords) Create(ctx context.Context, in gateway.NewArtwork) (artworks.Artwork, error) {
	if f.createErr != nil {
		return artworks.Artwork{}, f.createErr
	}
	f.created = append(f.created, in)
	return artworks.Artwork{
		ID:          "assigned-id",
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}, nil
}

func (f *fakeRecords) Update(ctx context.Context, id string, p gateway.Patch) (artworks.Artwork, error) {
	if f.updateErr != nil {
		return artworks.Artwork{}, f.updateErr
	}
	f.updated[id] = p
	a := artworks.Artwork{ID: id}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	return a, nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, suggestedName string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/gallery/1_" + suggestedName, nil
}

func TestSubmitCreate(t *testing.T) {
	records := newFakeRecords()
	uploads := &fakeUploader{}

	d := NewDraft(records, uploads)
	d.Title = "The Silent Echo"
	d.Description = "A study in absence"
	d.PickFile("echo.jpg", []byte("jpeg-bytes"))

	saved, err := d.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, uploads.calls)
	require.Len(t, records.created, 1)
	assert.Equal(t, "The Silent Echo", records.created[0].Title)
	assert.Equal(t, "A study in absence", records.created[0].Description)
	assert.Contains(t, records.created[0].ImageURL, "echo.jpg")
	assert.Equal(t, "assigned-id", saved.ID)

	// Success resets back to an empty create form.
	assert.Empty(t, d.Title)
	assert.Empty(t, d.Description)
	assert.Empty(t, d.Editing())
	assert.Empty(t, d.PreviewURL())
}

func TestSubmitValidation(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(d *Draft)
		field string
	}{
		{
			name: "empty title",
			setup: func(d *Draft) {
				d.Description = "d"
				d.PickFile("a.jpg", []byte("x"))
			},
			field: "title",
		},
		{
			name: "whitespace title",
			setup: func(d *Draft) {
				d.Title = "   "
				d.Description = "d"
				d.PickFile("a.jpg", []byte("x"))
			},
			field: "title",
		},
		{
			name: "empty description",
			setup: func(d *Draft) {
				d.Title = "t"
				d.PickFile("a.jpg", []byte("x"))
			},
			field: "description",
		},
		{
			name: "create mode without image",
			setup: func(d *Draft) {
				d.Title = "t"
				d.Description = "d"
			},
			field: "image",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := newFakeRecords()
			uploads := &fakeUploader{}
			d := NewDraft(records, uploads)
			tc.setup(d)

			_, err := d.Submit(context.Background())

			var verr *gateway.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			// Rejected locally: nothing crossed the network.
			assert.Zero(t, uploads.calls)
			assert.Empty(t, records.created)
			assert.Empty(t, records.updated)
		})
	}
}

func TestSubmitEditWithoutNewFileOmitsImage(t *testing.T) {
	records := newFakeRecords()
	uploads := &fakeUploader{}

	d := NewDraft(records, uploads)
	d.BeginEdit(artworks.Artwork{
		ID:          "art-1",
		Title:       "Old Title",
		Description: "Old description",
		ImageURL:    "https://cdn/old.jpg",
	})

	assert.Equal(t, "art-1", d.Editing())
	assert.Equal(t, "Old Title", d.Title)
	assert.Equal(t, "https://cdn/old.jpg", d.PreviewURL())

	d.Title = "New Title"

	_, err := d.Submit(context.Background())
	require.NoError(t, err)

	assert.Zero(t, uploads.calls)
	patch, ok := records.updated["art-1"]
	require.True(t, ok)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "New Title", *patch.Title)
	assert.Nil(t, patch.ImageURL, "image_url must stay out of the patch when no file was picked")
}

func TestSubmitEditWithNewFileReplacesImage(t *testing.T) {
	records := newFakeRecords()
	uploads := &fakeUploader{}

	d := NewDraft(records, uploads)
	d.BeginEdit(artworks.Artwork{ID: "art-1", Title: "t", Description: "d", ImageURL: "https://cdn/old.jpg"})
	d.PickFile("replacement.jpg", []byte("bytes"))

	_, err := d.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, uploads.calls)
	patch := records.updated["art-1"]
	require.NotNil(t, patch.ImageURL)
	assert.Contains(t, *patch.ImageURL, "replacement.jpg")
}

func TestSubmitUploadFailurePreservesDraft(t *testing.T) {
	records := newFakeRecords()
	uploads := &fakeUploader{err: &gateway.UploadError{Key: "gallery/x", Err: errors.New("transport down")}}

	d := NewDraft(records, uploads)
	d.Title = "Kept Title"
	d.Description = "Kept description"
	d.PickFile("kept.jpg", []byte("bytes"))

	_, err := d.Submit(context.Background())

	var uerr *gateway.UploadError
	require.ErrorAs(t, err, &uerr)

	// Upload failed first: no metadata write happened.
	assert.Empty(t, records.created)

	// Draft survives for a retry.
	assert.Equal(t, "Kept Title", d.Title)
	assert.Equal(t, "Kept description", d.Description)
	assert.Equal(t, "local:kept.jpg", d.PreviewURL())

	// Retry with the transport back succeeds.
	uploads.err = nil
	_, err = d.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, records.created, 1)
}

func TestSubmitGatewayFailurePreservesDraft(t *testing.T) {
	records := newFakeRecords()
	records.createErr = &gateway.GatewayError{Op: "create", Err: errors.New("policy rejected")}
	uploads := &fakeUploader{}

	d := NewDraft(records, uploads)
	d.Title = "t"
	d.Description = "d"
	d.PickFile("a.jpg", []byte("x"))

	_, err := d.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "t", d.Title)
	assert.Equal(t, "d", d.Description)
}

func TestCancelResetsToCreateMode(t *testing.T) {
	d := NewDraft(newFakeRecords(), &fakeUploader{})
	d.BeginEdit(artworks.Artwork{ID: "art-1", Title: "t", Description: "d", ImageURL: "u"})

	d.Cancel()

	assert.Empty(t, d.Editing())
	assert.Empty(t, d.Title)
	assert.Empty(t, d.PreviewURL())
}

func TestClearFileRestoresEditPreview(t *testing.T) {
	d := NewDraft(newFakeRecords(), &fakeUploader{})
	d.BeginEdit(artworks.Artwork{ID: "art-1", Title: "t", Description: "d", ImageURL: "https://cdn/old.jpg"})

	d.PickFile("new.jpg", []byte("x"))
	assert.Equal(t, "local:new.jpg", d.PreviewURL())

	d.ClearFile()
	assert.Equal(t, "https://cdn/old.jpg", d.PreviewURL())
}

func TestBeginEditClearsPriorSelection(t *testing.T) {
	d := NewDraft(newFakeRecords(), &fakeUploader{})
	d.PickFile("pending.jpg", []byte("x"))

	d.BeginEdit(artworks.Artwork{ID: "art-2", Title: "t", Description: "d", ImageURL: "https://cdn/two.jpg"})

	assert.Equal(t, "https://cdn/two.jpg", d.PreviewURL())

	// Submitting now must not upload the stale selection.
	_, err := d.Submit(context.Background())
	require.NoError(t, err)
}
