package models

import (
	"time"

	"github.com/google/uuid"
)

// RawReport is a single persisted sensory observation. Sensory readings are in [0, 1].
type RawReport struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Noise       float64   `json:"noise"`
	Crowds      float64   `json:"crowds"`
	Lighting    float64   `json:"lighting"`
	QuietScore  int       `json:"quiet_score"`
	Timestamp   time.Time `json:"timestamp"`
	Submitter   *string   `json:"submitter,omitempty"`
	DisplayName *string   `json:"display_name,omitempty"`
	DisplayTier *Tier     `json:"display_tier,omitempty"`
	Confidence  *float64  `json:"confidence,omitempty"`
}

// AggregatedPin is the representative map pin for one or more reports at the same place.
type AggregatedPin struct {
	ID                    string    `json:"id"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	DisplayName           *string   `json:"display_name,omitempty"`
	DisplayTier           *Tier     `json:"display_tier,omitempty"`
	Confidence            *float64  `json:"confidence,omitempty"`
	ReportCount           int       `json:"report_count"`
	AverageNoise          float64   `json:"average_noise"`
	AverageCrowds         float64   `json:"average_crowds"`
	AverageLighting       float64   `json:"average_lighting"`
	AverageQuietScore     int       `json:"average_quiet_score"`
	LatestTimestamp       time.Time `json:"latest_timestamp"`
	AttributedContributor string    `json:"attributed_contributor"`
}

// FilterOptions bound which pins are shown. Thresholds are inclusive upper bounds;
// zero From/To leave that side of the date range open.
type FilterOptions struct {
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	MaxNoise    float64   `json:"max_noise"`
	MaxCrowds   float64   `json:"max_crowds"`
	MaxLighting float64   `json:"max_lighting"`
}

// DefaultFilterOptions accepts every pin.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{MaxNoise: 1, MaxCrowds: 1, MaxLighting: 1}
}
