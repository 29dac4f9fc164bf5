// Package inventory is the admin-side view over the artwork collection:
// a fresh fetch plus a pure filter/sort pipeline over it.
package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/gateway"
)

// ErrDeleteInFlight rejects a second delete while one is pending.
var ErrDeleteInFlight = errors.New("a delete is already in flight")

// SortKey selects the ordering of the processed collection.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// ParseSortKey maps a request parameter onto a SortKey, defaulting to
// newest-first for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortTitleAsc, SortTitleDesc:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Filter keeps items whose title or description contains the term,
// case-insensitively. An empty term keeps everything.
func Filter(items []artworks.Artwork, term string) []artworks.Artwork {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]artworks.Artwork, 0, len(items))
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Description), term) {
			out = append(out, a)
		}
	}
	return out
}

// SortBy returns a sorted copy; the input slice is left alone.
func SortBy(items []artworks.Artwork, key SortKey) []artworks.Artwork {
	out := make([]artworks.Artwork, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortOldest:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case SortTitleAsc:
			return out[i].Title < out[j].Title
		case SortTitleDesc:
			return out[i].Title > out[j].Title
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	return out
}

// Process runs the full pipeline: filter first, then sort. It is a pure
// function of (collection, term, key) and is recomputed on every call.
func Process(items []artworks.Artwork, term string, key SortKey) []artworks.Artwork {
	return SortBy(Filter(items, term), key)
}

// Source is the slice of the gateway the explorer reads and deletes
// through.
type Source interface {
	List(ctx context.Context) ([]artworks.Artwork, error)
	Delete(ctx context.Context, id string) error
}

// ImageRemover cleans up the stored blob after a record delete.
type ImageRemover interface {
	RemoveQuiet(ctx context.Context, url string)
}

// Explorer holds the last successfully fetched collection. A failed
// refresh keeps the prior list so the view degrades instead of clearing.
type Explorer struct {
	source Source
	images ImageRemover

	items    []artworks.Artwork
	deleting bool
}

func NewExplorer(source Source, images ImageRemover) *Explorer {
	return &Explorer{source: source, images: images}
}

// Items returns the current collection snapshot.
func (e *Explorer) Items() []artworks.Artwork { return e.items }

// Refresh re-fetches the collection, replacing local state. On failure
// the previous items stay in place and the error is returned.
func (e *Explorer) Refresh(ctx context.Context) error {
	items, err := e.source.List(ctx)
	if err != nil {
		return err
	}
	e.items = items
	return nil
}

// Delete removes the record, then best-effort removes its stored image,
// then refreshes. Confirmation is the caller's responsibility.
func (e *Explorer) Delete(ctx context.Context, id string) error {
	if e.deleting {
		return ErrDeleteInFlight
	}
	e.deleting = true
	defer func() { e.deleting = false }()

	var priorURL string
	for _, a := range e.items {
		if a.ID == id {
			priorURL = a.ImageURL
			break
		}
	}

	if err := e.source.Delete(ctx, id); err != nil {
		return err
	}

	if priorURL != "" && e.images != nil {
		e.images.RemoveQuiet(ctx, priorURL)
	}

	return e.Refresh(ctx)
}

// IsNotFound reports whether a delete failed because zero rows were
// affected.
func IsNotFound(err error) bool {
	return errors.Is(err, gateway.ErrNotFound)
}
