package country

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"countryapi/internal/cache"
	"countryapi/internal/platform/restcountries"
)

// catalogCacheKey is versioned: bump it when the normalized shape changes.
const catalogCacheKey = "countries_list_v3"

// CatalogClient is the upstream catalog endpoint.
type CatalogClient interface {
	All(ctx context.Context) ([]restcountries.RawCountry, error)
}

// Service loads and serves the country catalog. The catalog is fetched once
// (cache-first), normalized, sorted by display name and then read-only.
type Service struct {
	client CatalogClient
	store  cache.Store

	mu        sync.RWMutex
	countries []Country
}

func NewService(client CatalogClient, store cache.Store) *Service {
	return &Service{client: client, store: store}
}

// Load returns the full catalog, sorted by display name. The cache is
// consulted before the network; a hit means no upstream request at all.
// Total fetch failure returns ErrCatalogUnavailable.
func (s *Service) Load(ctx context.Context) ([]Country, error) {
	s.mu.RLock()
	if s.countries != nil {
		list := s.countries
		s.mu.RUnlock()
		return list, nil
	}
	s.mu.RUnlock()

	if payload, ok := s.store.Get(ctx, catalogCacheKey); ok {
		var cached []Country
		if err := json.Unmarshal(payload, &cached); err == nil && len(cached) > 0 {
			s.setCatalog(cached)
			return cached, nil
		}
		log.Printf("catalog cache entry unusable, refetching")
	}

	raw, err := s.client.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	list := make([]Country, 0, len(raw))
	for _, rc := range raw {
		list = append(list, FromRaw(rc))
	}
	sortByName(list)

	if payload, err := json.Marshal(list); err == nil {
		s.store.Put(ctx, catalogCacheKey, payload)
	}

	s.setCatalog(list)
	return list, nil
}

// ByCode looks up a country by its 3-letter code, case-insensitive.
func (s *Service) ByCode(ctx context.Context, code string) (Country, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return Country{}, err
	}
	for _, c := range list {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return Country{}, ErrNotFound
}

// Refresh drops the cached catalog and reloads from upstream.
func (s *Service) Refresh(ctx context.Context) ([]Country, error) {
	s.store.Delete(ctx, catalogCacheKey)
	s.mu.Lock()
	s.countries = nil
	s.mu.Unlock()
	return s.Load(ctx)
}

func (s *Service) setCatalog(list []Country) {
	s.mu.Lock()
	if s.countries == nil {
		s.countries = list
	}
	s.mu.Unlock()
}

// sortByName orders by display name with locale-aware, case-insensitive
// collation so names like "Åland Islands" sort where users expect.
func sortByName(list []Country) {
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		return coll.CompareString(list[i].CommonName, list[j].CommonName) < 0
	})
}
