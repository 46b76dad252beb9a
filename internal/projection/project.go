// Package projection prepares aggregated pins for display: filtering, ordering and
// capping, plus the snapshot and scheduling helpers that feed it.
package projection

import (
	"sort"

	"sensory-map-api/internal/models"
)

// Query describes one projection request.
type Query struct {
	Filters      models.FilterOptions
	SortByRecent bool
	// MaxPins caps unclustered output; zero or negative disables the cap.
	MaxPins int
	// Clustered reports whether pins came from a clustered aggregation. The cap is skipped for them.
	Clustered bool
}

// Project filters, orders and caps pins. The input slice is not modified.
func Project(pins []models.AggregatedPin, q Query) []models.AggregatedPin {
	out := make([]models.AggregatedPin, 0, len(pins))
	for _, p := range pins {
		if Accept(p, q.Filters) {
			out = append(out, p)
		}
	}

	if q.SortByRecent {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LatestTimestamp.After(out[j].LatestTimestamp)
		})
	}

	if !q.Clustered && q.MaxPins > 0 && len(out) > q.MaxPins {
		out = out[:q.MaxPins]
	}
	return out
}

// Accept reports whether a pin passes every filter. Bounds are inclusive.
func Accept(p models.AggregatedPin, f models.FilterOptions) bool {
	if !f.From.IsZero() && p.LatestTimestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.LatestTimestamp.After(f.To) {
		return false
	}
	return p.AverageNoise <= f.MaxNoise &&
		p.AverageCrowds <= f.MaxCrowds &&
		p.AverageLighting <= f.MaxLighting
}
