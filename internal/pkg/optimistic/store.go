package optimistic

import "sync"

// Store is an explicitly owned collection keyed by stable id. All mutation
// goes through a Coordinator's apply/rollback pair; readers get copies.
type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{items: make(map[K]V)}
}

// Load replaces the collection wholesale, e.g. when hydrating from the
// persistence collaborator at startup.
func (s *Store[K, V]) Load(items map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copyMap(items)
}

// Snapshot returns a copy of the current collection.
func (s *Store[K, V]) Snapshot() map[K]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.items)
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[K, V]) replace(items map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
