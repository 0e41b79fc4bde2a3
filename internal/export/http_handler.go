package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"countryapi/internal/country"
	"countryapi/internal/httpx"
)

// Catalog is the country lookup the export endpoints read from.
type Catalog interface {
	ByCode(ctx context.Context, code string) (country.Country, error)
	Load(ctx context.Context) ([]country.Country, error)
}

type HTTPHandler struct {
	catalog Catalog
}

func NewHTTPHandler(catalog Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: catalog}
}

// Country handles GET /countries/{code}/export.csv
func (h *HTTPHandler) Country(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.ByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Unknown country code", nil)
			return
		}
		httpx.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE",
			"Country catalog could not be loaded, retry later", nil)
		return
	}

	writeDownloadHeaders(w, fileName(c.CommonName)+"_overview.csv")
	if err := WriteOverview(w, c); err != nil {
		log.Printf("export overview for %s: %v", c.Code, err)
	}
}

// Bulk handles GET /export.csv, optionally scoped by ?codes=CHL,FRA.
// Unknown codes are skipped; an empty codes filter exports the whole
// catalog.
func (h *HTTPHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.Load(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE",
			"Country catalog could not be loaded, retry later", nil)
		return
	}

	list := all
	if raw := strings.TrimSpace(r.URL.Query().Get("codes")); raw != "" {
		wanted := make(map[string]bool)
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				wanted[strings.ToUpper(code)] = true
			}
		}
		list = list[:0:0]
		for _, c := range all {
			if wanted[c.Code] {
				list = append(list, c)
			}
		}
		if len(list) == 0 {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "No matching country codes", nil)
			return
		}
	}

	writeDownloadHeaders(w, "countries_export.csv")
	if err := WriteBulk(w, list); err != nil {
		log.Printf("export bulk: %v", err)
	}
}

func writeDownloadHeaders(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

func fileName(commonName string) string {
	return strings.ToLower(strings.ReplaceAll(commonName, " ", "_"))
}
