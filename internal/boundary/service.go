package boundary

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"countryapi/internal/cache"
	"countryapi/internal/country"
	"countryapi/internal/platform/geodata"
	"countryapi/internal/platform/restcountries"
)

const datasetCacheKey = "country_geojson_v1"

// defaultPoint is the world-view center used when every lookup fails.
var defaultPoint = []float64{20, 0}

// DatasetClient fetches the static world boundary dataset.
type DatasetClient interface {
	Countries(ctx context.Context) (*geodata.FeatureCollection, error)
}

// PointClient is the secondary lookup for a fallback point location.
type PointClient interface {
	Alpha(ctx context.Context, code string) (*restcountries.AlphaResponse, error)
}

type Service struct {
	dataset DatasetClient
	points  PointClient
	store   cache.Store

	mu       sync.Mutex
	features *geodata.FeatureCollection
}

func NewService(dataset DatasetClient, points PointClient, store cache.Store) *Service {
	return &Service{dataset: dataset, points: points, store: store}
}

// Resolve finds the boundary for a country. It never fails: a dataset miss
// or fetch failure falls back to the capital's coordinates, and failing
// that to the default world-view point.
func (s *Service) Resolve(ctx context.Context, c country.Country) Boundary {
	if fc := s.collection(ctx); fc != nil {
		if f := matchFeature(fc, c); f != nil {
			if raw, err := json.Marshal(f); err == nil {
				return Boundary{Feature: raw}
			}
		}
	}
	return Boundary{Point: s.fallbackPoint(ctx, c)}
}

// collection returns the boundary dataset, fetching it at most once per
// process and persisting it through the cache store.
func (s *Service) collection(ctx context.Context) *geodata.FeatureCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.features != nil {
		return s.features
	}

	if payload, ok := s.store.Get(ctx, datasetCacheKey); ok {
		var fc geodata.FeatureCollection
		if err := json.Unmarshal(payload, &fc); err == nil && len(fc.Features) > 0 {
			s.features = &fc
			return s.features
		}
	}

	fc, err := s.dataset.Countries(ctx)
	if err != nil {
		log.Printf("boundary dataset: %v", err)
		return nil
	}
	if payload, err := json.Marshal(fc); err == nil {
		s.store.Put(ctx, datasetCacheKey, payload)
	}
	s.features = fc
	return s.features
}

// matchFeature tries the ISO code first, then the official and common
// names. Property keys vary across dataset editions.
func matchFeature(fc *geodata.FeatureCollection, c country.Country) *geodata.Feature {
	code := strings.ToUpper(c.Code)
	for i := range fc.Features {
		p := fc.Features[i].Properties
		iso := firstProp(p, "iso_a3", "ISO_A3", "ADM0_A3")
		if iso != "" && strings.EqualFold(iso, code) {
			return &fc.Features[i]
		}
	}
	for _, name := range []string{c.OfficialName, c.CommonName} {
		if name == "" {
			continue
		}
		for i := range fc.Features {
			p := fc.Features[i].Properties
			if nm := firstProp(p, "name", "ADMIN"); nm != "" && strings.EqualFold(nm, name) {
				return &fc.Features[i]
			}
		}
	}
	return nil
}

func firstProp(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// fallbackPoint asks the single-country endpoint for coordinates, preferring
// the capital's over the country centroid.
func (s *Service) fallbackPoint(ctx context.Context, c country.Country) []float64 {
	resp, err := s.points.Alpha(ctx, c.Code)
	if err != nil {
		log.Printf("fallback point for %s: %v", c.Code, err)
		return defaultPoint
	}
	if len(resp.CapitalInfo.LatLng) == 2 {
		return resp.CapitalInfo.LatLng
	}
	if len(resp.LatLng) == 2 {
		return resp.LatLng
	}
	return defaultPoint
}
