package country

import (
	"errors"
	"net/http"

	"countryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /countries
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Load(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSONSuccess(w, list, map[string]any{"total": len(list)})
}

// Get handles GET /countries/{code}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	c, err := h.service.ByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Unknown country code", nil)
			return
		}
		writeCatalogError(w, err)
		return
	}
	httpx.JSONSuccess(w, c, nil)
}

// Refresh handles POST /countries/refresh
func (h *HTTPHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Refresh(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.JSONSuccess(w, list, map[string]any{"total": len(list)})
}

// writeCatalogError maps the load failure to a retryable 503 so clients can
// render a retry affordance instead of an empty selector.
func writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrCatalogUnavailable) {
		httpx.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE",
			"Country catalog could not be loaded, retry later", nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
