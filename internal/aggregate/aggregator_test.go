package aggregate

import (
	"testing"
	"time"

	"sensory-map-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func report(lat, lon float64, noise, crowds, lighting float64, quiet int, ts time.Time) models.RawReport {
	return models.RawReport{
		ID:         uuid.New(),
		Latitude:   lat,
		Longitude:  lon,
		Noise:      noise,
		Crowds:     crowds,
		Lighting:   lighting,
		QuietScore: quiet,
		Timestamp:  ts,
	}
}

func TestAggregate_SameLocationScenario(t *testing.T) {
	t1 := t0
	t2 := t0.Add(time.Hour)
	a := report(35.681236, 139.767125, 0.2, 0.3, 0.4, 70, t1)
	a.Submitter = ptr("mika")
	b := report(35.681236, 139.767125, 0.6, 0.5, 0.2, 75, t2)
	b.Submitter = ptr("jo")

	pins := Aggregate([]models.RawReport{a, b}, true)

	require.Len(t, pins, 1)
	pin := pins[0]
	assert.Equal(t, Identify(35.681236, 139.767125), pin.ID)
	assert.Equal(t, 2, pin.ReportCount)
	assert.InDelta(t, 0.4, pin.AverageNoise, 1e-9)
	assert.InDelta(t, 0.4, pin.AverageCrowds, 1e-9)
	assert.InDelta(t, 0.3, pin.AverageLighting, 1e-9)
	assert.Equal(t, 72, pin.AverageQuietScore)
	assert.Equal(t, MultipleContributors, pin.AttributedContributor)
	assert.Equal(t, t2, pin.LatestTimestamp)
	assert.Nil(t, pin.Confidence)
}

func TestAggregate_DistinctLocations(t *testing.T) {
	reports := []models.RawReport{
		report(35.681236, 139.767125, 0.1, 0.1, 0.1, 90, t0),
		report(35.690000, 139.700000, 0.9, 0.9, 0.9, 10, t0),
		report(35.681236, 139.767125, 0.3, 0.3, 0.3, 80, t0),
	}

	pins := Aggregate(reports, true)

	require.Len(t, pins, 2)
	assert.Equal(t, 2, pins[0].ReportCount)
	assert.Equal(t, 1, pins[1].ReportCount)
	assert.Equal(t, 35.681236, pins[0].Latitude)
	assert.Equal(t, 85, pins[0].AverageQuietScore)
}

func TestAggregate_Unclustered(t *testing.T) {
	reports := []models.RawReport{
		report(35.681236, 139.767125, 0.1, 0.2, 0.3, 90, t0),
		report(35.681236, 139.767125, 0.5, 0.5, 0.5, 50, t0.Add(time.Minute)),
	}

	pins := Aggregate(reports, false)

	require.Len(t, pins, 2)
	for i, pin := range pins {
		assert.Equal(t, reports[i].ID.String(), pin.ID)
		assert.Equal(t, 1, pin.ReportCount)
		assert.Equal(t, reports[i].Noise, pin.AverageNoise)
		assert.Equal(t, reports[i].Timestamp, pin.LatestTimestamp)
		assert.Equal(t, AnonymousContributor, pin.AttributedContributor)
	}
}

func TestAggregate_Attribution(t *testing.T) {
	named := report(1, 1, 0, 0, 0, 50, t0)
	named.Submitter = ptr("ana")
	empty := report(2, 2, 0, 0, 0, 50, t0)
	empty.Submitter = ptr("")
	anon := report(3, 3, 0, 0, 0, 50, t0)

	pins := Aggregate([]models.RawReport{named, empty, anon}, true)
	require.Len(t, pins, 3)
	assert.Equal(t, "ana", pins[0].AttributedContributor)
	assert.Equal(t, AnonymousContributor, pins[1].AttributedContributor)
	assert.Equal(t, AnonymousContributor, pins[2].AttributedContributor)

	// Once merged, no individual name leaks.
	other := report(1, 1, 0, 0, 0, 50, t0)
	other.Submitter = ptr("ben")
	merged := Aggregate([]models.RawReport{named, other}, true)
	require.Len(t, merged, 1)
	assert.Equal(t, MultipleContributors, merged[0].AttributedContributor)
}

func TestAggregate_ResolutionFields(t *testing.T) {
	first := report(1, 1, 0, 0, 0, 50, t0)
	first.Confidence = ptr(0.9)
	second := report(1, 1, 0, 0, 0, 50, t0)
	second.DisplayName = ptr("Riverside Library")
	second.DisplayTier = ptr(models.TierPointOfInterest)
	second.Confidence = ptr(0.5)
	third := report(1, 1, 0, 0, 0, 50, t0)
	third.DisplayName = ptr("Mill Street")
	third.DisplayTier = ptr(models.TierStreet)

	pins := Aggregate([]models.RawReport{first, second, third}, true)

	require.Len(t, pins, 1)
	require.NotNil(t, pins[0].Confidence)
	assert.InDelta(t, 0.7, *pins[0].Confidence, 1e-9)
	require.NotNil(t, pins[0].DisplayName)
	assert.Equal(t, "Riverside Library", *pins[0].DisplayName)
	require.NotNil(t, pins[0].DisplayTier)
	assert.Equal(t, models.TierPointOfInterest, *pins[0].DisplayTier)
}

func TestAggregate_Idempotent(t *testing.T) {
	var reports []models.RawReport
	for i := 0; i < 30; i++ {
		r := report(35.68+float64(i%4)*0.01, 139.76, float64(i%10)/10, 0.5, 0.25, 40+i, t0.Add(time.Duration(i)*time.Minute))
		if i%3 == 0 {
			r.Confidence = ptr(float64(i%5) / 5)
		}
		reports = append(reports, r)
	}

	assert.Equal(t, Aggregate(reports, true), Aggregate(reports, true))
	assert.Equal(t, Aggregate(reports, false), Aggregate(reports, false))
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, true))
	assert.Empty(t, Aggregate(nil, false))
}
