// Package store holds the client-side working copy of one list: the
// pending and done collections, reconciled against server responses.
// Server-assigned fields (ids, timestamps) always win; the store never
// fabricates a record the server has not confirmed.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dori/wisht/internal/client"
	"github.com/dori/wisht/internal/model"
	"github.com/dori/wisht/internal/report"
)

// ErrEmptyTitle rejects a create whose title trims to nothing, before any
// network call is made
var ErrEmptyTitle = errors.New("title must not be empty")

// API is the slice of the wisht client the store depends on
type API interface {
	Pending(ctx context.Context, scope client.Scope) ([]model.Item, error)
	Done(ctx context.Context, scope client.Scope) ([]model.Item, error)
	Create(ctx context.Context, scope client.Scope, title, category string) (*model.Item, error)
	Update(ctx context.Context, scope client.Scope, id, title, category string) (*model.Item, error)
	Complete(ctx context.Context, scope client.Scope, id, comment string) (*model.Item, error)
	UpdateComment(ctx context.Context, scope client.Scope, id, comment string) (*model.Item, error)
}

// Store is the working collection for one list scope. A mutex guards it
// because Bubble Tea commands run off the update goroutine. Every failed
// operation leaves the collections exactly as they were.
type Store struct {
	mu       sync.Mutex
	api      API
	scope    client.Scope
	reporter *report.Reporter

	pending []model.Item
	done    []model.Item
}

// New creates a store scoped to one list
func New(api API, scope client.Scope, reporter *report.Reporter) *Store {
	return &Store{api: api, scope: scope, reporter: reporter}
}

// Scope returns the list scope this store serves
func (s *Store) Scope() client.Scope {
	return s.scope
}

// Pending returns a snapshot of the pending collection
func (s *Store) Pending() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.pending...)
}

// Done returns a snapshot of the done collection
func (s *Store) Done() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.done...)
}

// LoadPending fetches the pending collection. Single attempt; a failure
// keeps the previous local state and goes to the reporter.
func (s *Store) LoadPending(ctx context.Context) error {
	items, err := s.api.Pending(ctx, s.scope)
	if err != nil {
		s.reporter.Failure("load pending", err)
		return err
	}
	s.reporter.Debugf("loaded %d pending items", len(items))
	s.mu.Lock()
	s.pending = items
	s.mu.Unlock()
	return nil
}

// LoadDone fetches the done collection, same failure policy
func (s *Store) LoadDone(ctx context.Context) error {
	items, err := s.api.Done(ctx, s.scope)
	if err != nil {
		s.reporter.Failure("load done", err)
		return err
	}
	s.mu.Lock()
	s.done = items
	s.mu.Unlock()
	return nil
}

// Create adds a new pending item. An empty (or whitespace) title is
// rejected locally; no request is issued and nothing changes.
func (s *Store) Create(ctx context.Context, title, category string) (*model.Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	item, err := s.api.Create(ctx, s.scope, title, category)
	if err != nil {
		s.reporter.Failure("create item", err)
		return nil, err
	}

	s.mu.Lock()
	s.pending = append(s.pending, *item)
	s.mu.Unlock()
	return item, nil
}

// Update edits a pending item's title and category, replacing the local
// record with the server's response. An id the server no longer has is a
// failure for the caller, not a silent no-op.
func (s *Store) Update(ctx context.Context, id, title, category string) (*model.Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	item, err := s.api.Update(ctx, s.scope, id, title, category)
	if err != nil {
		s.reporter.Failure("update item", err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending[i] = *item
			break
		}
	}
	s.mu.Unlock()
	return item, nil
}

// Complete moves a pending item to done. On success the item leaves the
// local pending collection immediately. The done record is NOT added
// locally; the caller refetches the done collection so completed_at is
// always the server's, never a client guess.
func (s *Store) Complete(ctx context.Context, id, comment string) error {
	if _, err := s.api.Complete(ctx, s.scope, id, comment); err != nil {
		s.reporter.Failure("complete item", err)
		return err
	}

	s.mu.Lock()
	kept := s.pending[:0]
	for _, it := range s.pending {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.pending = kept
	s.mu.Unlock()
	return nil
}

// UpdateComment replaces a done item's comment with the server response.
// Only the targeted item changes.
func (s *Store) UpdateComment(ctx context.Context, id, comment string) (*model.Item, error) {
	item, err := s.api.UpdateComment(ctx, s.scope, id, comment)
	if err != nil {
		s.reporter.Failure("update comment", err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.done {
		if s.done[i].ID == id {
			s.done[i] = *item
			break
		}
	}
	s.mu.Unlock()
	return item, nil
}
