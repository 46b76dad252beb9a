package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errMissingCoordinate = errors.New("missing required query parameters 'lat' and 'lon'")

// parseLatLon reads the lat and lon query parameters. The returned error is
// safe to show to the client.
func parseLatLon(c *gin.Context) (lat, lon float64, err error) {
	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat == "" || rawLon == "" {
		return 0, 0, errMissingCoordinate
	}

	if lat, err = strconv.ParseFloat(rawLat, 64); err != nil {
		return 0, 0, errors.New("invalid latitude format")
	}
	if lon, err = strconv.ParseFloat(rawLon, 64); err != nil {
		return 0, 0, errors.New("invalid longitude format")
	}
	return lat, lon, nil
}
