package models

// PlaceCandidate is a nearby point of interest supplied by the places lookup.
type PlaceCandidate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category,omitempty"`
	Relevance float64 `json:"relevance"`
}
