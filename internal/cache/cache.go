// Package cache is a best-effort TTL cache in front of the slow public
// upstreams. Entries carry their own write timestamp and are judged stale on
// read; nothing scans for or deletes stale entries, the next successful
// write simply replaces them.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL is the validity window for every entry.
const DefaultTTL = 24 * time.Hour

// Store is the cache contract. Get reports a miss for absent, malformed and
// expired entries alike. Put and Delete are best-effort: storage failures
// are logged by the implementation and never surfaced, the service just runs
// uncached.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, payload []byte)
	Delete(ctx context.Context, key string)
}

// entry is the stored envelope: write time plus the opaque payload.
type entry struct {
	StoredAt int64           `json:"ts"`
	Payload  json.RawMessage `json:"data"`
}

func encodeEntry(now time.Time, payload []byte) ([]byte, error) {
	return json.Marshal(entry{StoredAt: now.UnixMilli(), Payload: payload})
}

// decodeEntry unwraps the envelope. Any defect reads as a miss.
func decodeEntry(raw []byte, now time.Time, ttl time.Duration) ([]byte, bool) {
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false
	}
	if e.StoredAt <= 0 || len(e.Payload) == 0 {
		return nil, false
	}
	if now.Sub(time.UnixMilli(e.StoredAt)) > ttl {
		return nil, false
	}
	return e.Payload, true
}
