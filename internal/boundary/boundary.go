// Package boundary resolves a country to a map shape. The matching order
// against the static dataset (ISO code, then official name, then common
// name) is best-effort: renamed or disputed territories can miss, and a
// miss degrades to a point location instead of an error.
package boundary

import "encoding/json"

// Boundary is either a GeoJSON feature from the world dataset or, when no
// feature matches, a [lat, lng] point to center on.
type Boundary struct {
	Feature json.RawMessage `json:"feature,omitempty"`
	Point   []float64       `json:"point,omitempty"`
}

// HasFeature reports whether a real boundary shape was found.
func (b Boundary) HasFeature() bool {
	return len(b.Feature) > 0
}
