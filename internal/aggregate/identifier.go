// Package aggregate merges sensory reports that share a location into map pins.
package aggregate

import "github.com/golang/geo/s2"

// CellLevel is the S2 level used for location identifiers; level 20 cells are roughly 8-10 m across.
const CellLevel = 20

// Identify returns the grouping key for a coordinate: the token of the enclosing S2 cell.
// Reports with equal identifiers are treated as the same place.
func Identify(lat, lon float64) string {
	return s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)).Parent(CellLevel).ToToken()
}
