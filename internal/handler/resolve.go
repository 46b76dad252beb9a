package handler

import (
	"context"
	"errors"
	"net/http"

	"sensory-map-api/internal/models"
	"sensory-map-api/internal/resolver"

	"github.com/gin-gonic/gin"
)

// ResolveHandler handles location resolution requests
type ResolveHandler struct {
	service LocationResolver
}

// LocationResolver interface for dependency injection
type LocationResolver interface {
	ResolveLocation(context.Context, float64, float64) (models.ResolvedLocation, error)
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(svc LocationResolver) *ResolveHandler {
	return &ResolveHandler{service: svc}
}

// Resolve handles GET /resolve requests
//
//	@Summary	Resolve a coordinate to a privacy-tiered place label
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	models.ResolvedLocation
//	@Failure	400	{object}	map[string]string
//	@Router		/resolve [get]
func (h *ResolveHandler) Resolve(c *gin.Context) {
	lat, lon, err := parseLatLon(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.service.ResolveLocation(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, resolver.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, location)
}
