// Package privacy holds the tunable thresholds that control location resolution
// and the settings surface through which they are changed.
package privacy

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInconsistentConfig is returned when the hedged POI threshold exceeds the direct POI threshold.
	ErrInconsistentConfig = errors.New("privacy: minConfidenceForHedgedPOI must not exceed minConfidenceForDirectPOI")
	// ErrInvalidThreshold is returned when a threshold is outside its allowed range.
	ErrInvalidThreshold = errors.New("privacy: invalid threshold")
)

// Config is the threshold set read by every resolution call. Values are passed by copy.
type Config struct {
	Version                   int     `json:"version" mapstructure:"version"`
	AreaOnlyOverride          bool    `json:"area_only_override" mapstructure:"area_only_override"`
	UsePlacesEnrichment       bool    `json:"use_places_enrichment" mapstructure:"use_places_enrichment"`
	ConfidenceHedgeThreshold  float64 `json:"confidence_hedge_threshold" mapstructure:"confidence_hedge_threshold"`
	POIMaxRadiusMeters        float64 `json:"poi_max_radius_meters" mapstructure:"poi_max_radius_meters"`
	SnapWindowMeters          float64 `json:"snap_window_meters" mapstructure:"snap_window_meters"`
	MinConfidenceForDirectPOI float64 `json:"min_confidence_for_direct_poi" mapstructure:"min_confidence_for_direct_poi"`
	MinConfidenceForHedgedPOI float64 `json:"min_confidence_for_hedged_poi" mapstructure:"min_confidence_for_hedged_poi"`
}

// DefaultConfig returns the shipped thresholds.
func DefaultConfig() Config {
	return Config{
		Version:                   1,
		AreaOnlyOverride:          false,
		UsePlacesEnrichment:       true,
		ConfidenceHedgeThreshold:  0.5,
		POIMaxRadiusMeters:        75,
		SnapWindowMeters:          12,
		MinConfidenceForDirectPOI: 0.8,
		MinConfidenceForHedgedPOI: 0.5,
	}
}

// Validate checks ranges and the hedged <= direct ordering.
func (c Config) Validate() error {
	unit := map[string]float64{
		"confidence_hedge_threshold":    c.ConfidenceHedgeThreshold,
		"min_confidence_for_direct_poi": c.MinConfidenceForDirectPOI,
		"min_confidence_for_hedged_poi": c.MinConfidenceForHedgedPOI,
	}
	for name, v := range unit {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v must be within [0, 1]", ErrInvalidThreshold, name, v)
		}
	}
	if !(c.POIMaxRadiusMeters > 0) {
		return fmt.Errorf("%w: poi_max_radius_meters=%v must be positive", ErrInvalidThreshold, c.POIMaxRadiusMeters)
	}
	if !(c.SnapWindowMeters >= 0) {
		return fmt.Errorf("%w: snap_window_meters=%v must not be negative", ErrInvalidThreshold, c.SnapWindowMeters)
	}
	if c.MinConfidenceForHedgedPOI > c.MinConfidenceForDirectPOI {
		return fmt.Errorf("%w (hedged=%v, direct=%v)", ErrInconsistentConfig, c.MinConfidenceForHedgedPOI, c.MinConfidenceForDirectPOI)
	}
	return nil
}
