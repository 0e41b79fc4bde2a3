package cache

import (
	"context"
	"log"
	"sync"
	"time"
)

// Memory is the in-process store, used when no Redis is configured and in
// tests. Entries survive only for the process lifetime.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
	ttl   time.Duration
	now   func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		items: make(map[string][]byte),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	raw, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return decodeEntry(raw, m.now(), m.ttl)
}

func (m *Memory) Put(_ context.Context, key string, payload []byte) {
	raw, err := encodeEntry(m.now(), payload)
	if err != nil {
		log.Printf("cache put %s: %v", key, err)
		return
	}
	m.mu.Lock()
	m.items[key] = raw
	m.mu.Unlock()
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}
