// Package pagestore keeps per-client page sessions in memory until they expire.
package pagestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrNotFound = errors.New("page session not found")

// Store holds page sessions of one kind. Reads refresh the expiry.
type Store[T any] struct {
	items *cache.Cache
	ttl   time.Duration
}

func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		items: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Put stores v under a fresh id and returns the id.
func (s *Store[T]) Put(v T) string {
	id := uuid.NewString()
	s.items.Set(id, v, s.ttl)
	return id
}

func (s *Store[T]) Get(id string) (T, error) {
	var zero T
	raw, ok := s.items.Get(id)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	// Replace only writes if the id is still present, so a concurrent Delete sticks.
	_ = s.items.Replace(id, v, s.ttl)
	return v, nil
}

func (s *Store[T]) Delete(id string) {
	s.items.Delete(id)
}

func (s *Store[T]) Len() int {
	return s.items.ItemCount()
}
