// Package indicator resolves World Bank style time series to their most
// recent usable observation. Availability varies wildly per country and per
// metric, so a missing or failed series is a per-row "no data", never an
// error that could take sibling metrics down with it.
package indicator

// Observation is the most recent time-stamped value of a series. A nil
// Value means no usable observation exists; Year may still carry the most
// recent year for context. Zero is a real value, distinct from nil.
type Observation struct {
	Year  string   `json:"year,omitempty"`
	Value *float64 `json:"value"`
}

// HasValue reports whether the observation carries a usable value.
func (o Observation) HasValue() bool {
	return o.Value != nil
}
