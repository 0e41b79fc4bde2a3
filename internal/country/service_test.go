package country

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"countryapi/internal/cache"
	"countryapi/internal/platform/restcountries"
)

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) All(ctx context.Context) ([]restcountries.RawCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]restcountries.RawCountry), args.Error(1)
}

func rawCountry(common, code string) restcountries.RawCountry {
	var rc restcountries.RawCountry
	rc.Name.Common = common
	rc.Name.Official = common
	rc.CCA3 = code
	return rc
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches, normalizes and sorts on cache miss", func(t *testing.T) {
		client := new(mockCatalogClient)
		client.On("All", ctx).Return([]restcountries.RawCountry{
			rawCountry("Zimbabwe", "ZWE"),
			rawCountry("Albania", "ALB"),
			rawCountry("Chile", "CHL"),
		}, nil).Once()

		s := NewService(client, cache.NewMemory(time.Hour))
		list, err := s.Load(ctx)
		require.NoError(t, err)

		require.Len(t, list, 3)
		assert.Equal(t, "Albania", list[0].CommonName)
		assert.Equal(t, "Chile", list[1].CommonName)
		assert.Equal(t, "Zimbabwe", list[2].CommonName)
		client.AssertExpectations(t)
	})

	t.Run("cache hit skips the network", func(t *testing.T) {
		store := cache.NewMemory(time.Hour)

		first := new(mockCatalogClient)
		first.On("All", ctx).Return([]restcountries.RawCountry{rawCountry("Chile", "CHL")}, nil).Once()
		warm := NewService(first, store)
		_, err := warm.Load(ctx)
		require.NoError(t, err)

		// New service instance, same store: must not hit upstream.
		second := new(mockCatalogClient)
		s := NewService(second, store)
		list, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		second.AssertNotCalled(t, "All", mock.Anything)
	})

	t.Run("total failure surfaces ErrCatalogUnavailable", func(t *testing.T) {
		client := new(mockCatalogClient)
		client.On("All", ctx).Return(nil, fmt.Errorf("connection refused"))

		s := NewService(client, cache.NewMemory(time.Hour))
		_, err := s.Load(ctx)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("second call serves from memory", func(t *testing.T) {
		client := new(mockCatalogClient)
		client.On("All", ctx).Return([]restcountries.RawCountry{rawCountry("Chile", "CHL")}, nil).Once()

		s := NewService(client, cache.NewMemory(time.Hour))
		_, err := s.Load(ctx)
		require.NoError(t, err)
		_, err = s.Load(ctx)
		require.NoError(t, err)
		client.AssertNumberOfCalls(t, "All", 1)
	})
}

func TestService_ByCode(t *testing.T) {
	ctx := context.Background()
	client := new(mockCatalogClient)
	client.On("All", ctx).Return([]restcountries.RawCountry{
		rawCountry("Chile", "CHL"),
		rawCountry("Peru", "PER"),
	}, nil)
	s := NewService(client, cache.NewMemory(time.Hour))

	t.Run("case-insensitive match", func(t *testing.T) {
		c, err := s.ByCode(ctx, "chl")
		require.NoError(t, err)
		assert.Equal(t, "Chile", c.CommonName)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := s.ByCode(ctx, "XXX")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	client := new(mockCatalogClient)
	client.On("All", ctx).Return([]restcountries.RawCountry{rawCountry("Chile", "CHL")}, nil)

	s := NewService(client, cache.NewMemory(time.Hour))
	_, err := s.Load(ctx)
	require.NoError(t, err)

	_, err = s.Refresh(ctx)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "All", 2)
}

func TestFromRaw(t *testing.T) {
	t.Run("defaults for missing fields", func(t *testing.T) {
		var rc restcountries.RawCountry
		rc.CCA3 = "XKX"

		c := FromRaw(rc)
		assert.Equal(t, "Unknown", c.CommonName)
		assert.Equal(t, "Unknown", c.OfficialName)
		assert.Equal(t, "", c.Capital)
		assert.EqualValues(t, 0, c.Population)
		assert.EqualValues(t, 0, c.AreaKm2)
		assert.NotNil(t, c.Languages)
		assert.NotNil(t, c.Currencies)
	})

	t.Run("first capital wins", func(t *testing.T) {
		rc := rawCountry("South Africa", "ZAF")
		rc.Capital = []string{"Pretoria", "Cape Town", "Bloemfontein"}

		c := FromRaw(rc)
		assert.Equal(t, "Pretoria", c.Capital)
	})

	t.Run("official name falls back to common", func(t *testing.T) {
		var rc restcountries.RawCountry
		rc.Name.Common = "Chile"
		rc.CCA3 = "CHL"

		c := FromRaw(rc)
		assert.Equal(t, "Chile", c.OfficialName)
	})
}
