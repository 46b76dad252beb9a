package privacy

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:   "hedged equal to direct",
			mutate: func(c *Config) { c.MinConfidenceForHedgedPOI = c.MinConfidenceForDirectPOI },
		},
		{
			name: "hedged above direct",
			mutate: func(c *Config) {
				c.MinConfidenceForDirectPOI = 0.5
				c.MinConfidenceForHedgedPOI = 0.8
			},
			expectErr: ErrInconsistentConfig,
		},
		{
			name:      "threshold above one",
			mutate:    func(c *Config) { c.MinConfidenceForDirectPOI = 1.2 },
			expectErr: ErrInvalidThreshold,
		},
		{
			name:      "nan threshold",
			mutate:    func(c *Config) { c.ConfidenceHedgeThreshold = math.NaN() },
			expectErr: ErrInvalidThreshold,
		},
		{
			name:      "zero radius",
			mutate:    func(c *Config) { c.POIMaxRadiusMeters = 0 },
			expectErr: ErrInvalidThreshold,
		},
		{
			name:      "negative snap window",
			mutate:    func(c *Config) { c.SnapWindowMeters = -1 },
			expectErr: ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_Update(t *testing.T) {
	settings, err := NewSettings(DefaultConfig())
	require.NoError(t, err)

	next := DefaultConfig()
	next.AreaOnlyOverride = true
	applied, err := settings.Update(next)
	require.NoError(t, err)
	assert.True(t, applied.AreaOnlyOverride)
	assert.Equal(t, 2, applied.Version)
	assert.Equal(t, applied, settings.Snapshot())

	bad := DefaultConfig()
	bad.MinConfidenceForHedgedPOI = 0.9
	bad.MinConfidenceForDirectPOI = 0.6
	kept, err := settings.Update(bad)
	assert.ErrorIs(t, err, ErrInconsistentConfig)
	assert.Equal(t, applied, kept)
	assert.Equal(t, applied, settings.Snapshot())
}

func TestNewSettings_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.POIMaxRadiusMeters = -5
	_, err := NewSettings(cfg)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestSettings_SnapshotIsIsolated(t *testing.T) {
	settings, err := NewSettings(DefaultConfig())
	require.NoError(t, err)

	snap := settings.Snapshot()
	snap.AreaOnlyOverride = true
	assert.False(t, settings.Snapshot().AreaOnlyOverride)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = settings.Update(DefaultConfig())
			_ = settings.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, 9, settings.Snapshot().Version)
}
