package detail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countryapi/internal/country"
)

type stubResolver struct {
	countries map[string]country.Country
	err       error
}

func (s *stubResolver) ByCode(_ context.Context, code string) (country.Country, error) {
	if s.err != nil {
		return country.Country{}, s.err
	}
	if c, ok := s.countries[code]; ok {
		return c, nil
	}
	return country.Country{}, country.ErrNotFound
}

func TestHTTPHandler_Get(t *testing.T) {
	newResolver := func() *stubResolver {
		return &stubResolver{countries: map[string]country.Country{"CHL": chile}}
	}

	t.Run("success carries section availability meta", func(t *testing.T) {
		ind, inst, bnd := newQuietMocks()
		quietIndicators(ind)
		handler := NewHTTPHandler(NewAggregator(ind, inst, bnd), newResolver())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/countries/CHL/details", nil)
		r.SetPathValue("code", "CHL")
		handler.Get(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data Detail         `json:"data"`
			Meta map[string]any `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "CHL", body.Data.Country.Code)
		assert.Equal(t, "en", body.Meta["lang"])
		sections := body.Meta["sections_available"].(map[string]any)
		assert.Equal(t, false, sections["health"])
	})

	t.Run("lang parameter localizes labels", func(t *testing.T) {
		ind, inst, bnd := newQuietMocks()
		quietIndicators(ind)
		handler := NewHTTPHandler(NewAggregator(ind, inst, bnd), newResolver())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/countries/CHL/details?lang=ur", nil)
		r.SetPathValue("code", "CHL")
		handler.Get(w, r)

		var body struct {
			Data Detail `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "صحت کے اشاریے", body.Data.Health.Title)
	})

	t.Run("unknown code is 404", func(t *testing.T) {
		ind, inst, bnd := newQuietMocks()
		quietIndicators(ind)
		handler := NewHTTPHandler(NewAggregator(ind, inst, bnd), newResolver())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/countries/ZZZ/details", nil)
		r.SetPathValue("code", "ZZZ")
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("catalog outage is 503", func(t *testing.T) {
		ind, inst, bnd := newQuietMocks()
		quietIndicators(ind)
		handler := NewHTTPHandler(NewAggregator(ind, inst, bnd),
			&stubResolver{err: country.ErrCatalogUnavailable})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/countries/CHL/details", nil)
		r.SetPathValue("code", "CHL")
		handler.Get(w, r)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
