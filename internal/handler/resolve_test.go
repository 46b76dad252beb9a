package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"sensory-map-api/internal/models"
	"sensory-map-api/internal/resolver"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLocationResolver is a mock implementation of the LocationResolver interface
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) ResolveLocation(ctx context.Context, lat float64, lon float64) (models.ResolvedLocation, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(models.ResolvedLocation), args.Error(1)
}

func TestResolveHandler_Resolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		lat            string
		lon            string
		callService    bool
		mockLocation   models.ResolvedLocation
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			lat:            "35.681236",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude",
			lat:            "north",
			lon:            "139.767125",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude",
			lat:            "35.681236",
			lon:            "east",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid longitude format"},
		},
		{
			name:           "hedged point of interest",
			lat:            "35.681236",
			lon:            "139.767125",
			callService:    true,
			mockLocation:   models.ResolvedLocation{Tier: models.TierPointOfInterest, Label: "KITTE", Confidence: 0.6, Hedged: true},
			expectedStatus: http.StatusOK,
			expectedBody: gin.H{
				"tier":       "poi",
				"label":      "KITTE",
				"confidence": 0.6,
				"hedged":     true,
			},
		},
		{
			name:           "out of range coordinate",
			lat:            "95",
			lon:            "139.767125",
			callService:    true,
			mockError:      fmt.Errorf("service: %w", resolver.ErrInvalidCoordinate),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "coordinates out of range"},
		},
		{
			name:           "service error",
			lat:            "35.681236",
			lon:            "139.767125",
			callService:    true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockLocationResolver)
			handler := NewResolveHandler(mockSvc)

			if tt.callService {
				lat, _ := strconv.ParseFloat(tt.lat, 64)
				lon, _ := strconv.ParseFloat(tt.lon, 64)
				mockSvc.On("ResolveLocation", mock.Anything, lat, lon).Return(tt.mockLocation, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/resolve", nil)
			q := req.URL.Query()
			if tt.lat != "" {
				q.Add("lat", tt.lat)
			}
			if tt.lon != "" {
				q.Add("lon", tt.lon)
			}
			req.URL.RawQuery = q.Encode()
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Resolve(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, toJSONValue(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

// toJSONValue round-trips v so it compares equal to a decoded response body.
func toJSONValue(t *testing.T, v interface{}) interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	var out interface{}
	assert.NoError(t, json.Unmarshal(b, &out))
	return out
}
