// Package resolver turns a raw GPS fix into a privacy-tiered place label.
package resolver

import (
	"errors"
	"fmt"

	"sensory-map-api/internal/geomath"
	"sensory-map-api/internal/models"
	"sensory-map-api/internal/privacy"
)

// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range coordinates.
var ErrInvalidCoordinate = errors.New("resolver: invalid coordinate")

const (
	// minAreaConfidence keeps the Area fallback from ever reporting zero confidence.
	minAreaConfidence = 0.1
	// UnknownAreaLabel is used when no area name is known for the fix.
	UnknownAreaLabel = "Unknown area"
)

// Resolve picks the tier, label and confidence for (lat, lon).
//
// The area-only override wins over everything else. With places enrichment off the
// candidates are ignored. Otherwise the best candidate is shown directly at or above
// MinConfidenceForDirectPOI, hedged at or above MinConfidenceForHedgedPOI, and below that
// the result falls back to the street and then the area in geo.
func Resolve(lat, lon float64, candidates []models.PlaceCandidate, geo models.ReverseGeocode, cfg privacy.Config) (models.ResolvedLocation, error) {
	if !geomath.ValidCoordinate(lat, lon) {
		return models.ResolvedLocation{}, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinate, lat, lon)
	}

	if cfg.AreaOnlyOverride {
		return models.ResolvedLocation{
			Tier:       models.TierArea,
			Label:      areaLabel(geo),
			Confidence: 1.0,
		}, nil
	}

	if cfg.UsePlacesEnrichment {
		scored := ScoreCandidates(lat, lon, candidates, cfg)
		if len(scored) > 0 {
			top := scored[0]
			switch {
			case top.Confidence >= cfg.MinConfidenceForDirectPOI:
				return models.ResolvedLocation{
					Tier:       models.TierPointOfInterest,
					Label:      top.Candidate.Name,
					Confidence: top.Confidence,
				}, nil
			case top.Confidence >= cfg.MinConfidenceForHedgedPOI:
				return models.ResolvedLocation{
					Tier:       models.TierPointOfInterest,
					Label:      top.Candidate.Name,
					Confidence: top.Confidence,
					Hedged:     true,
				}, nil
			}
		}
	}

	return fallback(geo, cfg), nil
}

func fallback(geo models.ReverseGeocode, cfg privacy.Config) models.ResolvedLocation {
	// A street with no confidence left is no match at all.
	if geo.Street != "" && geo.StreetConfidence > 0 {
		conf := clamp01(geo.StreetConfidence)
		return models.ResolvedLocation{
			Tier:       models.TierStreet,
			Label:      geo.Street,
			Confidence: conf,
			Hedged:     conf < cfg.ConfidenceHedgeThreshold,
		}
	}

	conf := clamp01(geo.AreaConfidence)
	if conf < minAreaConfidence {
		conf = minAreaConfidence
	}
	return models.ResolvedLocation{
		Tier:       models.TierArea,
		Label:      areaLabel(geo),
		Confidence: conf,
	}
}

func areaLabel(geo models.ReverseGeocode) string {
	if geo.Area == "" {
		return UnknownAreaLabel
	}
	return geo.Area
}
