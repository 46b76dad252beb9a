package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sensory-map-api/internal/privacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, privacy.DefaultConfig(), cfg.Privacy)
	assert.True(t, cfg.Pins.ClusterByDefault)
	assert.Equal(t, 500, cfg.Pins.MaxPins)
	assert.Equal(t, 30*time.Second, cfg.Pins.RefreshInterval)
	assert.Equal(t, 150.0, cfg.Resolve.StreetRadiusMeters)
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
server_address: ":9090"
log:
  level: debug
privacy:
  area_only_override: true
  poi_max_radius_meters: 50
  min_confidence_for_direct_poi: 0.9
  min_confidence_for_hedged_poi: 0.6
pins:
  max_pins: 100
  refresh_interval: 1m
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Privacy.AreaOnlyOverride)
	assert.Equal(t, 50.0, cfg.Privacy.POIMaxRadiusMeters)
	assert.Equal(t, 0.9, cfg.Privacy.MinConfidenceForDirectPOI)
	assert.Equal(t, 0.6, cfg.Privacy.MinConfidenceForHedgedPOI)
	assert.Equal(t, 12.0, cfg.Privacy.SnapWindowMeters)
	assert.Equal(t, 100, cfg.Pins.MaxPins)
	assert.Equal(t, time.Minute, cfg.Pins.RefreshInterval)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PRIVACY_USE_PLACES_ENRICHMENT", "false")
	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Privacy.UsePlacesEnrichment)
	assert.Equal(t, ":7070", cfg.ServerAddress)
}

func TestLoadConfig_InconsistentPrivacy(t *testing.T) {
	dir := writeConfig(t, `
privacy:
  min_confidence_for_direct_poi: 0.4
  min_confidence_for_hedged_poi: 0.7
`)

	_, err := LoadConfig(dir)
	assert.ErrorIs(t, err, privacy.ErrInconsistentConfig)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "privacy: [unclosed")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveCacheTTL(t *testing.T) {
	for _, ttl := range []string{"0s", "-1m"} {
		t.Run(ttl, func(t *testing.T) {
			dir := writeConfig(t, "resolve:\n  candidate_cache_ttl: "+ttl+"\n")

			_, err := LoadConfig(dir)
			assert.ErrorContains(t, err, "candidate_cache_ttl")
		})
	}
}
