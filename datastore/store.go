// Package datastore provides a thread-safe key-value registry that states use
// to share data. It has no interaction with the machine's control flow.
package datastore

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Store is a thread-safe map from string keys to arbitrary values. Each
// operation is atomic on its own; there are no multi-key transactions.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// New creates an empty store.
func New() *Store {
	return &Store{
		data: make(map[string]any),
	}
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide store, creating it on first use. It is
// never torn down. Prefer passing a store from New where possible.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// Count returns the number of keys.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Contains reports whether key exists.
func (s *Store) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Add stores value under key. It returns false, leaving the store unchanged,
// if key already exists.
func (s *Store) Add(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; ok {
		return false
	}
	s.data[key] = value
	return true
}

// Lookup returns the raw value stored under key.
func (s *Store) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Update replaces the value under key. It returns false if key is absent.
func (s *Store) Update(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return false
	}
	s.data[key] = value
	return true
}

// Remove deletes key. It returns false if key is absent.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Clear removes every key.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]any)
}

// Keys returns the keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all data. Values are not deep-copied.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]any, len(s.data))
	for k, v := range s.data {
		snapshot[k] = v
	}
	return snapshot
}

// Get returns the value under key as a T. It returns ErrKeyNotFound if the
// key is missing and a *TypeMismatchError if the value is not a T; in both
// cases the zero T is returned. A stored nil yields the zero T and no error.
func Get[T any](s *Store, key string) (T, error) {
	var zero T

	v, ok := s.Lookup(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if v == nil {
		return zero, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:  key,
			Want: reflect.TypeFor[T]().String(),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}

// GetOr returns the value under key as a T, or fallback if the key is
// missing or holds another type.
func GetOr[T any](s *Store, key string, fallback T) T {
	v, err := Get[T](s, key)
	if err != nil {
		return fallback
	}
	return v
}
