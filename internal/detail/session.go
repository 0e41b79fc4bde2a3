package detail

import (
	"context"
	"sync/atomic"

	"countryapi/internal/country"
)

// Session serializes country selections for one consumer. Each Select
// bumps a monotonic round; a fetch that finishes after a newer selection
// started is reported stale so its payload is never rendered over the
// current one.
type Session struct {
	agg   *Aggregator
	round atomic.Uint64
}

func NewSession(agg *Aggregator) *Session {
	return &Session{agg: agg}
}

// Select fetches the detail payload for c. The second return is false
// when another Select superseded this one while it was in flight; the
// caller must discard the payload in that case.
func (s *Session) Select(ctx context.Context, c country.Country, lang string) (Detail, bool) {
	round := s.round.Add(1)
	d := s.agg.Fetch(ctx, c, lang)
	if s.round.Load() != round {
		return Detail{}, false
	}
	return d, true
}
