package models

// Address is a reverse-geocodable street address point, the street/area source for location resolution.
type Address struct {
	ID        int     `json:"id"`
	Region    string  `json:"region"`
	Locality  string  `json:"locality"`
	Street    string  `json:"street"`
	Number    string  `json:"number"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ReverseGeocode is the street and area data known for a coordinate.
// Confidences are in [0, 1]. An empty Street means no street match.
type ReverseGeocode struct {
	Street           string  `json:"street,omitempty"`
	StreetConfidence float64 `json:"street_confidence"`
	Area             string  `json:"area"`
	AreaConfidence   float64 `json:"area_confidence"`
}
