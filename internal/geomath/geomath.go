// Package geomath provides distance and bearing calculations on WGS84 coordinates.
package geomath

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for all distance conversions.
const EarthRadiusMeters = 6371000.0

// ValidCoordinate reports whether lat/lon are finite and inside the WGS84 range.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceMeters returns the great-circle distance between two points in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Bearing returns the initial bearing from point 1 to point 2 in degrees (0-360, 0 = North).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)

	lonDiff := p2.Lng.Radians() - p1.Lng.Radians()
	y := math.Sin(lonDiff) * math.Cos(p2.Lat.Radians())
	x := math.Cos(p1.Lat.Radians())*math.Sin(p2.Lat.Radians()) -
		math.Sin(p1.Lat.Radians())*math.Cos(p2.Lat.Radians())*math.Cos(lonDiff)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
