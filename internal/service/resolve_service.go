package service

import (
	"context"
	"fmt"
	"time"

	"sensory-map-api/internal/aggregate"
	"sensory-map-api/internal/geomath"
	"sensory-map-api/internal/models"
	"sensory-map-api/internal/privacy"
	"sensory-map-api/internal/resolver"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// candidateMarginMeters widens candidate lookups so a cached list stays
	// complete for any fix inside the same location cell.
	candidateMarginMeters = 20.0

	localityConfidence = 0.9
	regionConfidence   = 0.5
)

// ResolveRepository interface for dependency injection
type ResolveRepository interface {
	FindPlaceCandidates(ctx context.Context, lat, lon, radiusMeters float64) ([]models.PlaceCandidate, error)
	FindNearestAddress(ctx context.Context, lat, lon, radiusMeters float64) (*models.Address, error)
}

// SettingsSource supplies the privacy config snapshot for each call.
type SettingsSource interface {
	Snapshot() privacy.Config
}

// ResolveOptions tunes the street lookup and candidate cache.
type ResolveOptions struct {
	StreetRadiusMeters float64
	CandidateCacheTTL  time.Duration
}

// ResolveService looks up the external place and address data for a fix and
// hands it to the resolver.
type ResolveService struct {
	repo       ResolveRepository
	settings   SettingsSource
	opts       ResolveOptions
	candidates *cache.Cache
}

// NewResolveService creates a new resolve service
func NewResolveService(repo ResolveRepository, settings SettingsSource, opts ResolveOptions) *ResolveService {
	return &ResolveService{
		repo:       repo,
		settings:   settings,
		opts:       opts,
		candidates: cache.New(opts.CandidateCacheTTL, 2*opts.CandidateCacheTTL),
	}
}

// ResolveLocation resolves the coordinates to a tiered place label under the current privacy settings.
func (s *ResolveService) ResolveLocation(ctx context.Context, lat, lon float64) (models.ResolvedLocation, error) {
	if !geomath.ValidCoordinate(lat, lon) {
		return models.ResolvedLocation{}, fmt.Errorf("service: %w: lat=%v lon=%v", resolver.ErrInvalidCoordinate, lat, lon)
	}

	cfg := s.settings.Snapshot()

	addr, err := s.repo.FindNearestAddress(ctx, lat, lon, s.opts.StreetRadiusMeters)
	if err != nil {
		return models.ResolvedLocation{}, fmt.Errorf("service: failed to find nearest address: %w", err)
	}
	geo := s.reverseGeocode(lat, lon, addr)

	var candidates []models.PlaceCandidate
	if !cfg.AreaOnlyOverride && cfg.UsePlacesEnrichment {
		candidates, err = s.placeCandidates(ctx, lat, lon, cfg.POIMaxRadiusMeters)
		if err != nil {
			return models.ResolvedLocation{}, fmt.Errorf("service: failed to find place candidates: %w", err)
		}
		logTopCandidates(lat, lon, candidates, cfg)
	}

	resolved, err := resolver.Resolve(lat, lon, candidates, geo, cfg)
	if err != nil {
		return models.ResolvedLocation{}, fmt.Errorf("service: %w", err)
	}
	return resolved, nil
}

func (s *ResolveService) placeCandidates(ctx context.Context, lat, lon, radius float64) ([]models.PlaceCandidate, error) {
	key := fmt.Sprintf("%s:%g", aggregate.Identify(lat, lon), radius)
	if cached, ok := s.candidates.Get(key); ok {
		return cached.([]models.PlaceCandidate), nil
	}

	candidates, err := s.repo.FindPlaceCandidates(ctx, lat, lon, radius+candidateMarginMeters)
	if err != nil {
		return nil, err
	}
	s.candidates.SetDefault(key, candidates)
	return candidates, nil
}

// reverseGeocode derives street and area labels from the nearest address.
// Street confidence falls off linearly to zero at the street radius.
func (s *ResolveService) reverseGeocode(lat, lon float64, addr *models.Address) models.ReverseGeocode {
	if addr == nil {
		return models.ReverseGeocode{}
	}

	var geo models.ReverseGeocode
	if addr.Street != "" {
		d := geomath.DistanceMeters(lat, lon, addr.Latitude, addr.Longitude)
		conf := 1 - d/s.opts.StreetRadiusMeters
		if conf < 0 {
			conf = 0
		}
		geo.Street = addr.Street
		geo.StreetConfidence = conf
	}

	switch {
	case addr.Locality != "":
		geo.Area = addr.Locality
		geo.AreaConfidence = localityConfidence
	case addr.Region != "":
		geo.Area = addr.Region
		geo.AreaConfidence = regionConfidence
	}
	return geo
}

func logTopCandidates(lat, lon float64, candidates []models.PlaceCandidate, cfg privacy.Config) {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}
	top := resolver.TopCandidates(resolver.ScoreCandidates(lat, lon, candidates, cfg), 3)
	for i, c := range top {
		log.Debug().
			Int("rank", i+1).
			Str("name", c.Candidate.Name).
			Float64("distance_m", c.DistanceMeters).
			Float64("score", c.Score).
			Bool("snapped", c.Snapped).
			Msg("place candidate")
	}
}
