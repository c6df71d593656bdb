package service

import (
	"context"
	"fmt"

	"restaurants-api/internal/models"
)

// RestaurantService contains the read-side business logic over the rows
// the ingestion pipeline writes.
type RestaurantService struct {
	repo RestaurantRepository
}

// Repository interface for dependency injection
type RestaurantRepository interface {
	ListByDestination(ctx context.Context, destinationID string) ([]models.Restaurant, error)
	GetBySlug(ctx context.Context, destinationID, slug string) (*models.Restaurant, error)
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// ListByDestination returns the active restaurants of a destination.
func (s *RestaurantService) ListByDestination(ctx context.Context, destinationID string) ([]models.Restaurant, error) {
	if destinationID == "" {
		return nil, fmt.Errorf("service: destination id cannot be empty")
	}

	restaurants, err := s.repo.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetBySlug returns one restaurant by its destination-scoped slug.
func (s *RestaurantService) GetBySlug(ctx context.Context, destinationID, slug string) (*models.Restaurant, error) {
	if destinationID == "" || slug == "" {
		return nil, fmt.Errorf("service: destination id and slug cannot be empty")
	}

	restaurant, err := s.repo.GetBySlug(ctx, destinationID, slug)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get restaurant: %w", err)
	}
	return restaurant, nil
}
