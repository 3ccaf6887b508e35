// Package api maps logical CRUD operations to FitTrack REST endpoints.
// Adapters do path construction only: payloads, query parameters and
// errors pass through the transport untouched.
package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fittrack/fittrack-cli/internal/transport"
)

// Resource adapts one collection endpoint (e.g. /api/checkins/) to the
// standard list/get/create/update/delete operations.
type Resource[T any] struct {
	c    *transport.Client
	base string // collection path with trailing slash
}

// NewResource constructs an adapter for the collection at base.
func NewResource[T any](c *transport.Client, base string) *Resource[T] {
	return &Resource[T]{c: c, base: base}
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.base + strconv.FormatInt(id, 10) + "/"
}

// List fetches one page of records; query is passed through unmodified.
func (r *Resource[T]) List(ctx context.Context, query url.Values) (Page[T], error) {
	var page Page[T]
	err := r.c.Get(ctx, r.base, query, &page)
	return page, err
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.c.Get(ctx, r.itemPath(id), nil, &out)
	return out, err
}

// Create posts a new record and returns the server's representation.
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	var out T
	err := r.c.Post(ctx, r.base, payload, &out)
	return out, err
}

// Update patches the record with id and returns the updated representation.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	var out T
	err := r.c.Patch(ctx, r.itemPath(id), payload, &out)
	return out, err
}

// Delete removes the record with id.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.c.Delete(ctx, r.itemPath(id))
}

// Subresource adapts a nested collection (e.g. /api/training/sessions/{id}/exercises/).
type Subresource[T any] struct {
	c      *transport.Client
	parent string // parent collection path with trailing slash
	name   string // child segment, no slashes
}

// NewSubresource constructs an adapter for the child collection name under parent.
func NewSubresource[T any](c *transport.Client, parent, name string) *Subresource[T] {
	return &Subresource[T]{c: c, parent: parent, name: name}
}

func (s *Subresource[T]) path(parentID int64) string {
	return s.parent + strconv.FormatInt(parentID, 10) + "/" + s.name + "/"
}

// List fetches the child records of parentID.
func (s *Subresource[T]) List(ctx context.Context, parentID int64) ([]T, error) {
	var page Page[T]
	if err := s.c.Get(ctx, s.path(parentID), nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Add creates a child record under parentID.
func (s *Subresource[T]) Add(ctx context.Context, parentID int64, payload any) (T, error) {
	var out T
	err := s.c.Post(ctx, s.path(parentID), payload, &out)
	return out, err
}
