package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"sensory-map-api/internal/models"
	"sensory-map-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PinsHandler handles map pin requests
type PinsHandler struct {
	service  PinProvider
	defaults PinDefaults
}

// PinProvider interface for dependency injection
type PinProvider interface {
	Pins(context.Context, service.PinQuery) ([]models.AggregatedPin, error)
}

// PinDefaults apply when a request leaves a parameter out.
type PinDefaults struct {
	Cluster bool
	MaxPins int
}

// NewPinsHandler creates a new pins handler
func NewPinsHandler(svc PinProvider, defaults PinDefaults) *PinsHandler {
	return &PinsHandler{service: svc, defaults: defaults}
}

// Pins handles GET /pins requests
//
//	@Summary	List aggregated report pins
//	@Produce	json
//	@Param		cluster			query	bool	false	"merge reports at the same location"
//	@Param		sort			query	string	false	"'recent' for newest first"
//	@Param		max				query	int		false	"cap for unclustered pins"
//	@Param		max_noise		query	number	false	"inclusive noise ceiling"
//	@Param		max_crowds		query	number	false	"inclusive crowds ceiling"
//	@Param		max_lighting	query	number	false	"inclusive lighting ceiling"
//	@Param		from			query	string	false	"RFC3339 start"
//	@Param		to				query	string	false	"RFC3339 end"
//	@Success	200				{array}	models.AggregatedPin
//	@Router		/pins [get]
func (h *PinsHandler) Pins(c *gin.Context) {
	q := service.PinQuery{
		Filters: models.DefaultFilterOptions(),
		Cluster: h.defaults.Cluster,
		MaxPins: h.defaults.MaxPins,
	}

	var err error
	if v := c.Query("cluster"); v != "" {
		if q.Cluster, err = strconv.ParseBool(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cluster flag"})
			return
		}
	}

	switch c.Query("sort") {
	case "":
	case "recent":
		q.SortByRecent = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be 'recent' or omitted"})
		return
	}

	if v := c.Query("max"); v != "" {
		if q.MaxPins, err = strconv.Atoi(v); err != nil || q.MaxPins < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max"})
			return
		}
	}

	thresholds := []struct {
		param  string
		target *float64
	}{
		{"max_noise", &q.Filters.MaxNoise},
		{"max_crowds", &q.Filters.MaxCrowds},
		{"max_lighting", &q.Filters.MaxLighting},
	}
	for _, th := range thresholds {
		v := c.Query(th.param)
		if v == "" {
			continue
		}
		if *th.target, err = strconv.ParseFloat(v, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + th.param})
			return
		}
	}

	if q.Filters.From, err = parseTime(c.Query("from")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
		return
	}
	if q.Filters.To, err = parseTime(c.Query("to")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
		return
	}

	pins, err := h.service.Pins(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, pins)
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}
