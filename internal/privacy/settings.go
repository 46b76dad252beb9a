package privacy

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Settings is the single place Config is mutated. Readers take a Snapshot per call.
type Settings struct {
	mu  sync.RWMutex
	cfg Config
}

// NewSettings creates a settings surface seeded with cfg. cfg must be valid.
func NewSettings(cfg Config) (*Settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Settings{cfg: cfg}, nil
}

// Snapshot returns a copy of the current config.
func (s *Settings) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the config. An invalid config is rejected and the previous one kept.
// The version is bumped on every accepted update.
func (s *Settings) Update(cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("rejected privacy settings update")
		return s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.Version = s.cfg.Version + 1
	s.cfg = cfg

	log.Info().
		Int("version", cfg.Version).
		Bool("area_only", cfg.AreaOnlyOverride).
		Bool("places_enrichment", cfg.UsePlacesEnrichment).
		Msg("privacy settings updated")
	return cfg, nil
}
