package gateway

import (
	"context"
	"errors"
	"strings"

	"portfolio-app/internal/domain/artworks"

	"gorm.io/gorm"
)

// NewArtwork carries the caller-supplied fields of a creation; id and
// created_at are assigned by the store.
type NewArtwork struct {
	Title       string
	Description string
	ImageURL    string
}

// Patch is a partial update. Nil fields are left untouched; in
// particular a nil ImageURL never overwrites the stored image_url.
type Patch struct {
	Title       *string
	Description *string
	ImageURL    *string
}

// Store owns artwork row persistence. Every call is a fresh round trip;
// there is no local caching.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns the full collection, newest-created first.
func (s *Store) List(ctx context.Context) ([]artworks.Artwork, error) {
	var items []artworks.Artwork
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, &GatewayError{Op: "list", Err: err}
	}
	return items, nil
}

// Get loads a single record by id.
func (s *Store) Get(ctx context.Context, id string) (artworks.Artwork, error) {
	var a artworks.Artwork
	err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return artworks.Artwork{}, ErrNotFound
		}
		return artworks.Artwork{}, &GatewayError{Op: "get", Err: err}
	}
	return a, nil
}

// Create persists a new record. All three fields are required.
func (s *Store) Create(ctx context.Context, in NewArtwork) (artworks.Artwork, error) {
	if strings.TrimSpace(in.Title) == "" {
		return artworks.Artwork{}, &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return artworks.Artwork{}, &ValidationError{Field: "description"}
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return artworks.Artwork{}, &ValidationError{Field: "image"}
	}

	a := artworks.Artwork{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return artworks.Artwork{}, &GatewayError{Op: "create", Err: err}
	}
	return a, nil
}

// Update applies a partial patch. Zero rows affected maps to ErrNotFound,
// whether the row is missing or a policy swallowed the write.
func (s *Store) Update(ctx context.Context, id string, p Patch) (artworks.Artwork, error) {
	updates := map[string]interface{}{}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return artworks.Artwork{}, &ValidationError{Field: "title"}
		}
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return artworks.Artwork{}, &ValidationError{Field: "description"}
		}
		updates["description"] = *p.Description
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}

	if len(updates) > 0 {
		res := s.db.WithContext(ctx).
			Model(&artworks.Artwork{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return artworks.Artwork{}, &GatewayError{Op: "update", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return artworks.Artwork{}, ErrNotFound
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a record. Zero rows affected maps to ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&artworks.Artwork{}, "id = ?", id)
	if res.Error != nil {
		return &GatewayError{Op: "delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
