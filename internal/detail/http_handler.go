package detail

import (
	"context"
	"errors"
	"net/http"

	"countryapi/internal/country"
	"countryapi/internal/httpx"
	"countryapi/internal/i18n"
)

// CountryResolver resolves a country code to its catalog record.
type CountryResolver interface {
	ByCode(ctx context.Context, code string) (country.Country, error)
}

type HTTPHandler struct {
	agg       *Aggregator
	countries CountryResolver
}

func NewHTTPHandler(agg *Aggregator, countries CountryResolver) *HTTPHandler {
	return &HTTPHandler{agg: agg, countries: countries}
}

// Get handles GET /countries/{code}/details
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.countries.ByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Unknown country code", nil)
			return
		}
		httpx.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE",
			"Country catalog could not be loaded, retry later", nil)
		return
	}

	lang := i18n.Normalize(r.URL.Query().Get("lang"))
	d := h.agg.Fetch(r.Context(), c, lang)

	httpx.JSONSuccess(w, d, map[string]any{
		"lang": lang,
		"sections_available": map[string]bool{
			"gender":       d.Gender.Available,
			"health":       d.Health.Available,
			"economic":     d.Economic.Available,
			"education":    d.Education.Available,
			"institutions": d.Institutions.Available,
		},
	})
}
