package institution

import (
	"errors"

	"countryapi/internal/platform/hipolabs"
)

// ErrNoData is returned when the directory has nothing for a country, or
// the directory itself could not be reached. Both render the same way.
var ErrNoData = errors.New("no institution data")

// PageSize is the fixed page size for institution listings.
const PageSize = 50

// Institution is one directory record, minimally normalized from the
// upstream shape. The list for a country lives only as long as that
// country's selection and is replaced wholesale on re-selection.
type Institution struct {
	Name          string   `json:"name"`
	Domains       []string `json:"domains"`
	WebPages      []string `json:"web_pages"`
	StateProvince string   `json:"state_province,omitempty"`
}

// FromRaw normalizes one directory record.
func FromRaw(raw hipolabs.RawInstitution) Institution {
	inst := Institution{
		Name:     raw.Name,
		Domains:  raw.Domains,
		WebPages: raw.WebPages,
	}
	if raw.StateProvince != nil {
		inst.StateProvince = *raw.StateProvince
	}
	return inst
}

// Query defines filters and pagination for the institution list. The zero
// value means no filtering, name ascending, page 1.
type Query struct {
	Q    string `validate:"max=200"`
	City string `validate:"max=200"`
	TLD  string `validate:"max=63"`
	Sort string `validate:"omitempty,oneof=name_asc name_desc"`
	Page int
}

// Result is one page of the filtered list.
type Result struct {
	Page        []Institution `json:"page"`
	Total       int           `json:"total"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}
