// Package memory provides in-memory adapters for state that never needs to
// survive a restart. The working carts of browsing sessions live here; an
// abandoned cart simply disappears with the process.
package memory

import (
	"context"
	"sync"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// sessionEntry holds one session's cart behind its own lock, so updates to
// the same session serialize without blocking other sessions.
type sessionEntry struct {
	mu   sync.Mutex
	cart *cart.Cart
}

// SessionCartStore keeps each session's cart in memory.
// It implements the CartStore port.
//
// Readers always receive snapshots and writers work on a copy that is swapped
// in only when the whole update succeeds, so a cart observed outside Update
// can never be mutated by another request.
type SessionCartStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// NewSessionCartStore creates an empty cart store.
func NewSessionCartStore() *SessionCartStore {
	return &SessionCartStore{
		entries: make(map[string]*sessionEntry),
	}
}

// Get returns a snapshot of the session's cart, or a fresh empty cart if the
// session has none yet.
func (s *SessionCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	s.mu.Unlock()

	if !ok {
		return cart.NewCart(sessionID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.cart.Clone(), nil
}

// Update runs fn on a working copy of the session's cart while holding the
// session's lock, then swaps the copy in. A non-nil error from fn discards
// the copy and leaves the stored cart untouched.
func (s *SessionCartStore) Update(_ context.Context, sessionID string, fn func(*cart.Cart) error) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	entry, err := s.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.cart.Clone()
	if err := fn(working); err != nil {
		return err
	}

	entry.cart = working
	return nil
}

// entry returns the session's entry, creating one with an empty cart on
// first use. Entries are never removed while the process runs; a cleared
// cart stays as an empty entry.
func (s *SessionCartStore) entry(sessionID string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[sessionID]; ok {
		return existing, nil
	}

	fresh, err := cart.NewCart(sessionID)
	if err != nil {
		return nil, err
	}

	entry := &sessionEntry{cart: fresh}
	s.entries[sessionID] = entry
	return entry, nil
}
