package country

import (
	"errors"

	"countryapi/internal/platform/restcountries"
)

// ErrNotFound is returned when no country matches the requested code.
var ErrNotFound = errors.New("country not found")

// ErrCatalogUnavailable is returned when the catalog could not be loaded at
// all. This is the one failure callers must surface as a retryable state:
// nothing can be selected without the catalog.
var ErrCatalogUnavailable = errors.New("country catalog unavailable")

// Country is the normalized catalog record. Immutable once built; identity
// is Code.
type Country struct {
	Code         string              `json:"code"`
	CommonName   string              `json:"common_name"`
	OfficialName string              `json:"official_name"`
	Capital      string              `json:"capital"`
	Region       string              `json:"region"`
	Subregion    string              `json:"subregion"`
	Population   int64               `json:"population"`
	AreaKm2      float64             `json:"area_km2"`
	Languages    map[string]string   `json:"languages"`
	Currencies   map[string]Currency `json:"currencies"`
	FlagURL      string              `json:"flag_url"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// FromRaw normalizes one catalog record: missing names default to "Unknown",
// a capital list flattens to its first element, numeric gaps to zero and
// mapping gaps to empty maps.
func FromRaw(rc restcountries.RawCountry) Country {
	common := rc.Name.Common
	if common == "" {
		common = rc.Name.Official
	}
	if common == "" {
		common = "Unknown"
	}
	official := rc.Name.Official
	if official == "" {
		official = common
	}

	capital := ""
	if len(rc.Capital) > 0 {
		capital = rc.Capital[0]
	}

	flag := rc.Flags.PNG
	if flag == "" {
		flag = rc.Flags.SVG
	}

	languages := make(map[string]string, len(rc.Languages))
	for code, name := range rc.Languages {
		languages[code] = name
	}
	currencies := make(map[string]Currency, len(rc.Currencies))
	for code, cur := range rc.Currencies {
		currencies[code] = Currency{Name: cur.Name, Symbol: cur.Symbol}
	}

	return Country{
		Code:         rc.CCA3,
		CommonName:   common,
		OfficialName: official,
		Capital:      capital,
		Region:       rc.Region,
		Subregion:    rc.Subregion,
		Population:   max64(rc.Population, 0),
		AreaKm2:      maxFloat(rc.Area, 0),
		Languages:    languages,
		Currencies:   currencies,
		FlagURL:      flag,
	}
}

func max64(v, floor int64) int64 {
	if v < floor {
		return floor
	}
	return v
}

func maxFloat(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
