package indicator

import (
	"context"
	"log"

	"countryapi/internal/platform/worldbank"
)

// SeriesClient is the indicator time-series endpoint.
type SeriesClient interface {
	Series(ctx context.Context, countryCode, indicatorID string) ([]worldbank.Row, error)
}

type Resolver struct {
	client SeriesClient
}

func NewResolver(client SeriesClient) *Resolver {
	return &Resolver{client: client}
}

// Latest returns the first row with a non-null value, relying on the
// upstream's most-recent-first ordering. When every row is null the most
// recent year is kept for context. Fetch failures of any kind resolve to an
// empty observation.
func (r *Resolver) Latest(ctx context.Context, countryCode, indicatorID string) Observation {
	rows, err := r.client.Series(ctx, countryCode, indicatorID)
	if err != nil {
		log.Printf("indicator %s for %s: %v", indicatorID, countryCode, err)
		return Observation{}
	}
	for _, row := range rows {
		if row.Value != nil {
			return Observation{Year: row.Date, Value: row.Value}
		}
	}
	if len(rows) > 0 {
		return Observation{Year: rows[0].Date}
	}
	return Observation{}
}

// FirstAvailable tries indicator codes in order and stops at the first that
// yields a value. Metrics that were recoded over the years publish under
// several codes with varying coverage; callers list them best-first.
func (r *Resolver) FirstAvailable(ctx context.Context, countryCode string, indicatorIDs []string) Observation {
	for _, id := range indicatorIDs {
		if obs := r.Latest(ctx, countryCode, id); obs.HasValue() {
			return obs
		}
	}
	return Observation{}
}
