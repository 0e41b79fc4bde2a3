// Package detail assembles the per-country dashboard payload from the
// catalog, the indicator resolver, the institutions directory and the
// boundary service. Sections are fetched in parallel and fail
// independently, so one upstream outage degrades a card instead of the
// whole page.
package detail

import (
	"countryapi/internal/boundary"
	"countryapi/internal/country"
	"countryapi/internal/indicator"
	"countryapi/internal/institution"
)

// IndicatorRow is one labelled observation inside a section.
type IndicatorRow struct {
	Key   string                `json:"key"`
	Label string                `json:"label"`
	Unit  string                `json:"unit,omitempty"`
	Obs   indicator.Observation `json:"observation"`
}

// Section is a group of indicator rows. Available is true when at least
// one row carries a value; a section that fetched fine but is all nulls
// still renders, row by row, as "no data".
type Section struct {
	Title     string         `json:"title"`
	Available bool           `json:"available"`
	Rows      []IndicatorRow `json:"rows"`
}

// Gender holds the male/female population split. Percentages are whole
// numbers and always sum to 100 unless both counts are missing or zero,
// in which case both are 0.
type Gender struct {
	Available  bool     `json:"available"`
	Male       *float64 `json:"male"`
	Female     *float64 `json:"female"`
	MalePct    float64  `json:"male_pct"`
	FemalePct  float64  `json:"female_pct"`
	MaleYear   string   `json:"male_year,omitempty"`
	FemaleYear string   `json:"female_year,omitempty"`
}

// Institutions is the directory section: the total match count plus the
// first page of results.
type Institutions struct {
	Available bool                      `json:"available"`
	Total     int                       `json:"total"`
	Page      []institution.Institution `json:"page"`
}

// Link is an external resource rendered on the health card.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Detail is the full aggregated payload for one country.
type Detail struct {
	Country      country.Country   `json:"country"`
	Gender       Gender            `json:"gender"`
	Health       Section           `json:"health"`
	Economic     Section           `json:"economic"`
	Education    Section           `json:"education"`
	Institutions Institutions      `json:"institutions"`
	Boundary     boundary.Boundary `json:"boundary"`
	HealthLinks  []Link            `json:"health_links"`
}
