package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"sensory-map-api/internal/aggregate"
	"sensory-map-api/internal/models"
	"sensory-map-api/internal/projection"

	"golang.org/x/sync/singleflight"
)

// SnapshotSource supplies the current report generation.
type SnapshotSource interface {
	Load() *projection.Snapshot
}

// PinQuery is a request for display pins.
type PinQuery struct {
	Filters      models.FilterOptions
	SortByRecent bool
	MaxPins      int
	Cluster      bool
}

// PinService aggregates the current report snapshot into pins and projects them.
// At most one aggregation per (generation, clustering) runs at a time; concurrent
// callers share its result.
type PinService struct {
	reports   SnapshotSource
	group     singleflight.Group
	projector *projection.Projector

	mu   sync.Mutex
	memo map[aggregationKey][]models.AggregatedPin
}

type aggregationKey struct {
	generation uint64
	cluster    bool
}

// NewPinService creates a new pin service
func NewPinService(reports SnapshotSource) *PinService {
	return &PinService{
		reports:   reports,
		projector: projection.NewProjector(),
		memo:      make(map[aggregationKey][]models.AggregatedPin),
	}
}

// Pins returns the display pins for q, computed from a single consistent snapshot.
func (s *PinService) Pins(ctx context.Context, q PinQuery) ([]models.AggregatedPin, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	snap := s.reports.Load()
	pins := s.aggregated(snap, q.Cluster)

	projected, _ := s.projector.Project(snap.Generation, pins, projection.Query{
		Filters:      q.Filters,
		SortByRecent: q.SortByRecent,
		MaxPins:      q.MaxPins,
		Clustered:    q.Cluster,
	})
	return projected, nil
}

func (s *PinService) aggregated(snap *projection.Snapshot, cluster bool) []models.AggregatedPin {
	key := aggregationKey{generation: snap.Generation, cluster: cluster}

	s.mu.Lock()
	pins, ok := s.memo[key]
	s.mu.Unlock()
	if ok {
		return pins
	}

	flight := strconv.FormatUint(snap.Generation, 10) + ":" + strconv.FormatBool(cluster)
	v, _, _ := s.group.Do(flight, func() (interface{}, error) {
		pins := aggregate.Aggregate(snap.Reports, cluster)

		s.mu.Lock()
		defer s.mu.Unlock()
		for k := range s.memo {
			// A newer generation was memoised while this one aggregated.
			if k.generation > snap.Generation {
				return pins, nil
			}
		}
		// Older generations can no longer be requested.
		for k := range s.memo {
			if k.generation < snap.Generation {
				delete(s.memo, k)
			}
		}
		s.memo[key] = pins
		return pins, nil
	})
	return v.([]models.AggregatedPin)
}
