package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurants-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a lookup matches no restaurant row.
var ErrNotFound = errors.New("repository: restaurant not found")

const restaurantColumns = `
	id, place_id, destination_id, slug, name, short_name,
	description, summary, tagline, address, phone, website,
	latitude, longitude, rating, review_count, cuisines,
	price_level, price_range, price_range_label,
	hours, attributes, raw_payload, is_active, data_updated_at, created_at`

// Repository implements restaurant persistence on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetByPlaceID looks up a restaurant by its external place id, the
// stable upsert key. Returns ErrNotFound when no row matches.
func (r *Repository) GetByPlaceID(ctx context.Context, placeID string) (*models.Restaurant, error) {
	sql := `SELECT` + restaurantColumns + ` FROM restaurants WHERE place_id = $1`

	rec, err := r.scanOne(r.db.QueryRow(ctx, sql, placeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get restaurant by place id: %w", err)
	}
	return rec, nil
}

// ExistsPlaceID reports whether a restaurant row already exists for the
// given place id, without fetching it.
func (r *Repository) ExistsPlaceID(ctx context.Context, placeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE place_id = $1)`, placeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check place id existence: %w", err)
	}
	return exists, nil
}

// SlugExists reports whether a slug is already taken within a destination.
func (r *Repository) SlugExists(ctx context.Context, destinationID, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE destination_id = $1 AND slug = $2)`,
		destinationID, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check slug existence: %w", err)
	}
	return exists, nil
}

// Insert writes a new restaurant row.
func (r *Repository) Insert(ctx context.Context, rec *models.Restaurant) error {
	sql := `
		INSERT INTO restaurants (
			place_id, destination_id, slug, name, short_name,
			description, summary, tagline, address, phone, website,
			latitude, longitude, rating, review_count, cuisines,
			price_level, price_range, price_range_label,
			hours, attributes, raw_payload, is_active, data_updated_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		RETURNING id`

	err := r.db.QueryRow(ctx, sql,
		rec.PlaceID, rec.DestinationID, rec.Slug, rec.Name, rec.ShortName,
		rec.Description, rec.Summary, rec.Tagline, rec.Address, rec.Phone, rec.Website,
		rec.Latitude, rec.Longitude, rec.Rating, rec.ReviewCount, rec.Cuisines,
		rec.PriceLevel, rec.PriceRange, rec.PriceLabel,
		rec.Hours, rec.Attributes, rec.RawPayload, rec.IsActive, rec.DataUpdatedAt, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to insert restaurant: %w", err)
	}
	return nil
}

// Update overwrites the normalized fields of an existing row, keyed by
// place id. The slug is deliberately not touched: a restaurant keeps the
// slug it was first published under.
func (r *Repository) Update(ctx context.Context, rec *models.Restaurant) error {
	sql := `
		UPDATE restaurants SET
			name = $2, short_name = $3, description = $4, summary = $5,
			tagline = $6, address = $7, phone = $8, website = $9,
			latitude = $10, longitude = $11, rating = $12, review_count = $13,
			cuisines = $14, price_level = $15, price_range = $16,
			price_range_label = $17, hours = $18, attributes = $19,
			raw_payload = $20, data_updated_at = $21
		WHERE place_id = $1`

	tag, err := r.db.Exec(ctx, sql,
		rec.PlaceID, rec.Name, rec.ShortName, rec.Description, rec.Summary,
		rec.Tagline, rec.Address, rec.Phone, rec.Website,
		rec.Latitude, rec.Longitude, rec.Rating, rec.ReviewCount,
		rec.Cuisines, rec.PriceLevel, rec.PriceRange,
		rec.PriceLabel, rec.Hours, rec.Attributes,
		rec.RawPayload, rec.DataUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDestination returns the active restaurants of a destination,
// best-rated first.
func (r *Repository) ListByDestination(ctx context.Context, destinationID string) ([]models.Restaurant, error) {
	sql := `
		SELECT` + restaurantColumns + `
		FROM restaurants
		WHERE destination_id = $1 AND is_active
		ORDER BY rating DESC NULLS LAST, review_count DESC NULLS LAST`

	rows, err := r.db.Query(ctx, sql, destinationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		rec, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return restaurants, nil
}

// GetBySlug returns one restaurant by its destination-scoped slug.
func (r *Repository) GetBySlug(ctx context.Context, destinationID, slug string) (*models.Restaurant, error) {
	sql := `SELECT` + restaurantColumns + ` FROM restaurants WHERE destination_id = $1 AND slug = $2`

	rec, err := r.scanOne(r.db.QueryRow(ctx, sql, destinationID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get restaurant by slug: %w", err)
	}
	return rec, nil
}

func (r *Repository) scanOne(row pgx.Row) (*models.Restaurant, error) {
	var rec models.Restaurant
	err := row.Scan(
		&rec.ID, &rec.PlaceID, &rec.DestinationID, &rec.Slug, &rec.Name, &rec.ShortName,
		&rec.Description, &rec.Summary, &rec.Tagline, &rec.Address, &rec.Phone, &rec.Website,
		&rec.Latitude, &rec.Longitude, &rec.Rating, &rec.ReviewCount, &rec.Cuisines,
		&rec.PriceLevel, &rec.PriceRange, &rec.PriceLabel,
		&rec.Hours, &rec.Attributes, &rec.RawPayload, &rec.IsActive, &rec.DataUpdatedAt, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
