package resolver

import (
	"sort"

	"sensory-map-api/internal/geomath"
	"sensory-map-api/internal/models"
	"sensory-map-api/internal/privacy"
)

// snapBonus is added to the proximity score of a candidate inside the snap window.
const snapBonus = 0.25

// ScoredCandidate is a place candidate ranked against a raw fix.
type ScoredCandidate struct {
	Candidate      models.PlaceCandidate `json:"candidate"`
	DistanceMeters float64               `json:"distance_meters"`
	Snapped        bool                  `json:"snapped"`
	Score          float64               `json:"score"`
	Confidence     float64               `json:"confidence"`
}

// ScoreCandidates ranks candidates around (lat, lon), best first.
//
// Proximity falls off linearly from 1 at the fix to 0 at cfg.POIMaxRadiusMeters;
// candidates beyond the radius, or with unusable coordinates, are dropped.
// Snapped candidates (within cfg.SnapWindowMeters) get snapBonus on top.
// Confidence is the score clamped to [0, 1]. Ties break on distance, then name.
func ScoreCandidates(lat, lon float64, candidates []models.PlaceCandidate, cfg privacy.Config) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !geomath.ValidCoordinate(c.Latitude, c.Longitude) {
			continue
		}

		d := geomath.DistanceMeters(lat, lon, c.Latitude, c.Longitude)
		if d > cfg.POIMaxRadiusMeters {
			continue
		}

		score := 1 - d/cfg.POIMaxRadiusMeters
		snapped := d <= cfg.SnapWindowMeters
		if snapped {
			score += snapBonus
		}

		scored = append(scored, ScoredCandidate{
			Candidate:      c,
			DistanceMeters: d,
			Snapped:        snapped,
			Score:          score,
			Confidence:     clamp01(score),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.DistanceMeters != b.DistanceMeters {
			return a.DistanceMeters < b.DistanceMeters
		}
		return a.Candidate.Name < b.Candidate.Name
	})

	return scored
}

// TopCandidates returns at most n leading entries of an already ranked list.
func TopCandidates(scored []ScoredCandidate, n int) []ScoredCandidate {
	if n < 0 {
		n = 0
	}
	if len(scored) > n {
		return scored[:n]
	}
	return scored
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
