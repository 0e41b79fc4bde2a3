// Package export renders country records as CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"countryapi/internal/country"
)

var overviewHeader = []string{
	"Name", "Capital", "Region", "Subregion", "Population",
	"Area_km2", "Languages", "Currencies", "Code",
}

var bulkHeader = []string{
	"Name", "Capital", "Region", "Subregion", "Population", "Area_km2", "Code",
}

// WriteOverview writes the single-country CSV with the full column set.
func WriteOverview(w io.Writer, c country.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(overviewHeader); err != nil {
		return err
	}
	if err := cw.Write([]string{
		c.CommonName,
		c.Capital,
		c.Region,
		c.Subregion,
		strconv.FormatInt(c.Population, 10),
		formatArea(c.AreaKm2),
		joinLanguages(c.Languages),
		joinCurrencies(c.Currencies),
		c.Code,
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteBulk writes one row per country, in the given order, without the
// language and currency columns.
func WriteBulk(w io.Writer, list []country.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bulkHeader); err != nil {
		return err
	}
	for _, c := range list {
		if err := cw.Write([]string{
			c.CommonName,
			c.Capital,
			c.Region,
			c.Subregion,
			strconv.FormatInt(c.Population, 10),
			formatArea(c.AreaKm2),
			c.Code,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}

// joinLanguages renders "Spanish; English" with a deterministic order,
// since the source is a map.
func joinLanguages(langs map[string]string) string {
	names := make([]string, 0, len(langs))
	for _, name := range langs {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "; ")
}

// joinCurrencies renders "Chilean peso (CLP)" entries sorted by code.
func joinCurrencies(currencies map[string]country.Currency) string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s (%s)", currencies[code].Name, code))
	}
	return strings.Join(parts, "; ")
}
