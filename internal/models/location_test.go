package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_JSON(t *testing.T) {
	loc := ResolvedLocation{Tier: TierPointOfInterest, Label: "Central Library", Confidence: 0.6, Hedged: true}

	b, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"poi","label":"Central Library","confidence":0.6,"hedged":true}`, string(b))

	var decoded ResolvedLocation
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, loc, decoded)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("street")
	require.NoError(t, err)
	assert.Equal(t, TierStreet, tier)

	_, err = ParseTier("city")
	assert.Error(t, err)
}
