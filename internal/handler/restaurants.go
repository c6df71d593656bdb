package handler

import (
	"context"
	"errors"
	"net/http"

	"restaurants-api/internal/models"
	"restaurants-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler handles restaurant read requests
type RestaurantHandler struct {
	service RestaurantService
}

// Service interface for dependency injection
type RestaurantService interface {
	ListByDestination(ctx context.Context, destinationID string) ([]models.Restaurant, error)
	GetBySlug(ctx context.Context, destinationID, slug string) (*models.Restaurant, error)
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: svc}
}

// ListByDestination handles GET /destinations/:id/restaurants requests
// @Summary List restaurants of a destination
// @Produce json
// @Param id path string true "destination id"
// @Success 200 {array} models.Restaurant
// @Router /destinations/{id}/restaurants [get]
func (h *RestaurantHandler) ListByDestination(c *gin.Context) {
	destinationID := c.Param("id")

	restaurants, err := h.service.ListByDestination(c.Request.Context(), destinationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetBySlug handles GET /destinations/:id/restaurants/:slug requests
// @Summary Get one restaurant by slug
// @Produce json
// @Param id path string true "destination id"
// @Param slug path string true "restaurant slug"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} map[string]string
// @Router /destinations/{id}/restaurants/{slug} [get]
func (h *RestaurantHandler) GetBySlug(c *gin.Context) {
	destinationID := c.Param("id")
	slug := c.Param("slug")

	restaurant, err := h.service.GetBySlug(c.Request.Context(), destinationID, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}
