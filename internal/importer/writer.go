package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurants-api/internal/models"
	"restaurants-api/internal/repository"
)

// maxSlugAttempts guards the collision-resolution loop against runaway
// growth on pathological data.
const maxSlugAttempts = 5000

// RestaurantStore is the persistence surface the writer needs.
type RestaurantStore interface {
	GetByPlaceID(ctx context.Context, placeID string) (*models.Restaurant, error)
	SlugExists(ctx context.Context, destinationID, slug string) (bool, error)
	Insert(ctx context.Context, rec *models.Restaurant) error
	Update(ctx context.Context, rec *models.Restaurant) error
}

// UpsertWriter inserts or updates normalized restaurant records, keyed by
// external place id. Slugs are resolved to uniqueness on insert and
// never rewritten on update.
type UpsertWriter struct {
	store RestaurantStore
}

func NewUpsertWriter(store RestaurantStore) *UpsertWriter {
	return &UpsertWriter{store: store}
}

// Upsert writes the record and reports whether a new row was created.
// On update the original slug and creation time are preserved and only
// the data timestamp is refreshed.
func (w *UpsertWriter) Upsert(ctx context.Context, rec *models.Restaurant) (created bool, err error) {
	existing, err := w.store.GetByPlaceID(ctx, rec.PlaceID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("importer: lookup %s: %w", rec.PlaceID, err)
	}

	if existing != nil {
		rec.ID = existing.ID
		rec.Slug = existing.Slug
		rec.CreatedAt = existing.CreatedAt
		if err := w.store.Update(ctx, rec); err != nil {
			return false, fmt.Errorf("importer: update %s: %w", rec.PlaceID, err)
		}
		return false, nil
	}

	slug, err := w.resolveSlug(ctx, rec.DestinationID, rec.Slug)
	if err != nil {
		return false, err
	}
	rec.Slug = slug

	if err := w.store.Insert(ctx, rec); err != nil {
		return false, fmt.Errorf("importer: insert %s: %w", rec.PlaceID, err)
	}
	return true, nil
}

// resolveSlug finds a free slug within the destination. On collision the
// trailing destination suffix is stripped from the base and numbered
// variants "-{n}-{destinationID}" are tried for increasing n.
func (w *UpsertWriter) resolveSlug(ctx context.Context, destinationID, candidate string) (string, error) {
	taken, err := w.store.SlugExists(ctx, destinationID, candidate)
	if err != nil {
		return "", fmt.Errorf("importer: check slug %q: %w", candidate, err)
	}
	if !taken {
		return candidate, nil
	}

	base := strings.TrimSuffix(candidate, "-"+destinationID)
	for n := 1; n <= maxSlugAttempts; n++ {
		next := fmt.Sprintf("%s-%d-%s", base, n, destinationID)
		taken, err := w.store.SlugExists(ctx, destinationID, next)
		if err != nil {
			return "", fmt.Errorf("importer: check slug %q: %w", next, err)
		}
		if !taken {
			return next, nil
		}
	}
	return "", fmt.Errorf("importer: could not resolve a unique slug for %q in %s after %d attempts",
		candidate, destinationID, maxSlugAttempts)
}
