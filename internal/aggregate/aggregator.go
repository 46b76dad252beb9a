package aggregate

import (
	"sensory-map-api/internal/models"
)

const (
	// MultipleContributors replaces individual names once reports are merged.
	MultipleContributors = "Multiple Contributors"
	// AnonymousContributor attributes a single report without a submitter name.
	AnonymousContributor = "you"
)

// Aggregate turns raw reports into pins. With clustering on, reports sharing an
// identifier collapse into one pin; with it off every report is its own pin.
// Output order follows the first appearance of each pin's reports in the input.
func Aggregate(reports []models.RawReport, clusterEnabled bool) []models.AggregatedPin {
	if !clusterEnabled {
		pins := make([]models.AggregatedPin, 0, len(reports))
		for _, r := range reports {
			pins = append(pins, buildPin(r.ID.String(), []models.RawReport{r}))
		}
		return pins
	}

	var order []string
	partitions := make(map[string][]models.RawReport)
	for _, r := range reports {
		key := Identify(r.Latitude, r.Longitude)
		if _, ok := partitions[key]; !ok {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], r)
	}

	pins := make([]models.AggregatedPin, 0, len(order))
	for _, key := range order {
		pins = append(pins, buildPin(key, partitions[key]))
	}
	return pins
}

// buildPin summarises a non-empty partition. The first report is the representative.
func buildPin(id string, partition []models.RawReport) models.AggregatedPin {
	first := partition[0]
	pin := models.AggregatedPin{
		ID:              id,
		Latitude:        first.Latitude,
		Longitude:       first.Longitude,
		ReportCount:     len(partition),
		LatestTimestamp: first.Timestamp,
	}

	var noise, crowds, lighting, confSum float64
	var quiet, confCount int
	for _, r := range partition {
		noise += r.Noise
		crowds += r.Crowds
		lighting += r.Lighting
		quiet += r.QuietScore

		if r.Timestamp.After(pin.LatestTimestamp) {
			pin.LatestTimestamp = r.Timestamp
		}
		if r.Confidence != nil {
			confSum += *r.Confidence
			confCount++
		}
		if pin.DisplayName == nil && r.DisplayName != nil {
			name := *r.DisplayName
			pin.DisplayName = &name
		}
		if pin.DisplayTier == nil && r.DisplayTier != nil {
			tier := *r.DisplayTier
			pin.DisplayTier = &tier
		}
	}

	n := float64(len(partition))
	pin.AverageNoise = noise / n
	pin.AverageCrowds = crowds / n
	pin.AverageLighting = lighting / n
	pin.AverageQuietScore = quiet / len(partition)
	if confCount > 0 {
		avg := confSum / float64(confCount)
		pin.Confidence = &avg
	}
	pin.AttributedContributor = attribution(partition)

	return pin
}

func attribution(partition []models.RawReport) string {
	if len(partition) > 1 {
		return MultipleContributors
	}
	if s := partition[0].Submitter; s != nil && *s != "" {
		return *s
	}
	return AnonymousContributor
}
