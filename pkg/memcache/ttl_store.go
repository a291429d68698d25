// pkg/memcache/ttl_store.go
package memcache

import (
	"sync"
	"time"
)

// Store is a string-keyed in-memory map whose entries expire after a TTL.
type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns the value for key if not expired. Expired entries are removed.
	Get(key string) (V, bool)

	Delete(key string)
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// sweepEvery is how many writes pass between scans for expired entries.
const sweepEvery = 256

type TTLStore[V any] struct {
	mu     sync.RWMutex
	data   map[string]entry[V]
	writes int
	now    func() time.Time
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: now.Add(ttl),
	}

	s.writes++
	if s.writes%sweepEvery == 0 {
		s.sweepLocked(now)
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.data[key]; still && !s.now().Before(cur.expiresAt) {
			delete(s.data, key) // cleanup expired
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *TTLStore[V]) sweepLocked(now time.Time) {
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
