package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurants-api/internal/models"
	"restaurants-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRestaurantService is a mock implementation of the RestaurantService interface
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) ListByDestination(ctx context.Context, destinationID string) ([]models.Restaurant, error) {
	args := m.Called(ctx, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetBySlug(ctx context.Context, destinationID, slug string) (*models.Restaurant, error) {
	args := m.Called(ctx, destinationID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func performRequest(handle func(*gin.Context), params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = params
	handle(c)
	return w
}

func TestRestaurantHandler_ListByDestination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		destinationID   string
		mockRestaurants []models.Restaurant
		mockError       error
		expectedStatus  int
	}{
		{
			name:          "successful list",
			destinationID: "tokyo",
			mockRestaurants: []models.Restaurant{
				{ID: 1, DestinationID: "tokyo", Slug: "sakura-sushi-tokyo", Name: "Sakura Sushi"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "empty list",
			destinationID:   "kyoto",
			mockRestaurants: []models.Restaurant{},
			expectedStatus:  http.StatusOK,
		},
		{
			name:           "service error",
			destinationID:  "tokyo",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRestaurantService)
			handler := NewRestaurantHandler(mockSvc)
			mockSvc.On("ListByDestination", mock.Anything, tt.destinationID).Return(tt.mockRestaurants, tt.mockError)

			w := performRequest(handler.ListByDestination, gin.Params{{Key: "id", Value: tt.destinationID}})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []models.Restaurant
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, len(tt.mockRestaurants))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestRestaurantHandler_GetBySlug(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockRestaurant *models.Restaurant
		mockError      error
		expectedStatus int
	}{
		{
			name:           "found",
			mockRestaurant: &models.Restaurant{ID: 1, DestinationID: "tokyo", Slug: "sakura-sushi-tokyo", Name: "Sakura Sushi"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			mockError:      repository.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service error",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRestaurantService)
			handler := NewRestaurantHandler(mockSvc)
			mockSvc.On("GetBySlug", mock.Anything, "tokyo", "sakura-sushi-tokyo").Return(tt.mockRestaurant, tt.mockError)

			w := performRequest(handler.GetBySlug, gin.Params{
				{Key: "id", Value: "tokyo"},
				{Key: "slug", Value: "sakura-sushi-tokyo"},
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
