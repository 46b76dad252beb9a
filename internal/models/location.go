package models

import (
	"encoding/json"
	"fmt"
)

// Tier is the disclosure granularity of a resolved location.
type Tier int

const (
	TierArea Tier = iota
	TierStreet
	TierPointOfInterest
)

func (t Tier) String() string {
	switch t {
	case TierPointOfInterest:
		return "poi"
	case TierStreet:
		return "street"
	case TierArea:
		return "area"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier is the inverse of Tier.String.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "poi":
		return TierPointOfInterest, nil
	case "street":
		return TierStreet, nil
	case "area":
		return TierArea, nil
	}
	return TierArea, fmt.Errorf("models: unknown tier %q", s)
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ResolvedLocation is the outcome of resolving a coordinate to a place label.
// Hedged labels are rendered by the consumer as "near {label}".
type ResolvedLocation struct {
	Tier       Tier    `json:"tier"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Hedged     bool    `json:"hedged"`
}
