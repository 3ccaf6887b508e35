// Package store implements the per-resource state container backing the
// CLI: a fetched collection, the currently focused record, and a busy flag
// scoped to each in-flight operation.
package store

import (
	"context"
	"net/url"
	"sync"

	"github.com/fittrack/fittrack-cli/internal/api"
)

// Adapter is the endpoint surface a Store drives. *api.Resource[T]
// satisfies it.
type Adapter[T any] interface {
	List(ctx context.Context, query url.Values) (api.Page[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id int64, payload any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Store holds the client-side state of one resource collection.
//
// The busy flag is an indicator for in-flight work, not a lock: it does not
// serialize overlapping operations. Each call sets it on entry and clears
// it when that call settles, so with two concurrent calls the flag can read
// false while the earlier one is still in flight. The mutex below guards
// slice and flag mutation only and is never held across a network call,
// which keeps that observable behavior intact.
type Store[T any] struct {
	adapter Adapter[T]
	id      func(T) int64

	mu      sync.Mutex
	items   []T
	current *T
	busy    bool
}

// New constructs a Store over adapter, using id to extract record identity.
func New[T any](adapter Adapter[T], id func(T) int64) *Store[T] {
	return &Store[T]{adapter: adapter, id: id}
}

// Items returns a copy of the current collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Current returns the focused record, if any.
func (s *Store[T]) Current() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		var zero T
		return zero, false
	}
	return *s.current, true
}

// Loading reports whether an operation is marked in flight. See the type
// comment for the semantics under overlapping calls.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Store[T]) begin() {
	s.mu.Lock()
	s.busy = true
	s.mu.Unlock()
}

// settle clears the busy flag, applying the state mutation (if any) first.
// It runs exactly once per operation, on success and on failure alike.
func (s *Store[T]) settle(apply func()) {
	s.mu.Lock()
	if apply != nil {
		apply()
	}
	s.busy = false
	s.mu.Unlock()
}

// List replaces the collection with one page of server results.
func (s *Store[T]) List(ctx context.Context, query url.Values) (api.Page[T], error) {
	s.begin()
	page, err := s.adapter.List(ctx, query)
	if err != nil {
		s.settle(nil)
		return api.Page[T]{}, err
	}
	s.settle(func() { s.items = page.Results })
	return page, nil
}

// Get fetches one record and makes it the focused record. The collection
// is untouched.
func (s *Store[T]) Get(ctx context.Context, id int64) (T, error) {
	s.begin()
	rec, err := s.adapter.Get(ctx, id)
	if err != nil {
		s.settle(nil)
		var zero T
		return zero, err
	}
	s.settle(func() { s.current = &rec })
	return rec, nil
}

// Create posts payload and prepends the returned record to the collection.
func (s *Store[T]) Create(ctx context.Context, payload any) (T, error) {
	s.begin()
	rec, err := s.adapter.Create(ctx, payload)
	if err != nil {
		s.settle(nil)
		var zero T
		return zero, err
	}
	s.settle(func() { s.items = append([]T{rec}, s.items...) })
	return rec, nil
}

// Update patches the record with id. When a record with that identity is in
// the collection it is replaced in place, preserving position; otherwise
// the collection is left unchanged (no insert). The focused record is not
// reconciled.
func (s *Store[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	s.begin()
	rec, err := s.adapter.Update(ctx, id, payload)
	if err != nil {
		s.settle(nil)
		var zero T
		return zero, err
	}
	s.settle(func() {
		for i := range s.items {
			if s.id(s.items[i]) == id {
				s.items[i] = rec
				break
			}
		}
	})
	return rec, nil
}

// Delete removes the record with id from the collection when present; a
// miss is a no-op. The focused record is not reconciled.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	s.begin()
	if err := s.adapter.Delete(ctx, id); err != nil {
		s.settle(nil)
		return err
	}
	s.settle(func() {
		kept := s.items[:0]
		for _, it := range s.items {
			if s.id(it) != id {
				kept = append(kept, it)
			}
		}
		s.items = kept
	})
	return nil
}
