package institution

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"countryapi/internal/country"
	"countryapi/internal/httpx"
)

var validate = validator.New()

// CountryResolver resolves a country code to its catalog record; the
// directory is keyed by display name, not code.
type CountryResolver interface {
	ByCode(ctx context.Context, code string) (country.Country, error)
}

type HTTPHandler struct {
	service   *Service
	countries CountryResolver
}

func NewHTTPHandler(service *Service, countries CountryResolver) *HTTPHandler {
	return &HTTPHandler{service: service, countries: countries}
}

// List handles GET /countries/{code}/institutions
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
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

	params := r.URL.Query()
	q := Query{
		Q:    params.Get("q"),
		City: params.Get("city"),
		TLD:  params.Get("tld"),
		Sort: params.Get("sort"),
	}
	q.Page, _ = strconv.Atoi(params.Get("page"))

	if err := validate.Struct(q); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid filter parameters", nil)
		return
	}

	list, err := h.service.ByCountry(r.Context(), c.CommonName)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			httpx.JSONSuccess(w, Result{Page: []Institution{}, CurrentPage: 1, TotalPages: 1},
				map[string]any{"no_data": true})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	res := Filter(list, q)
	httpx.JSONSuccess(w, res, map[string]any{
		"page":      res.CurrentPage,
		"page_size": PageSize,
		"total":     res.Total,
	})
}
