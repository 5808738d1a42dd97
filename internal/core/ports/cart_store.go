package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// CartStore defines the contract for holding the working cart of each
// browsing session. Carts are scratch state, not part of the transactional
// store; an implementation may keep them entirely in memory.
//
// Concurrent requests can share one session, so all cart mutation goes
// through Update, which serializes per session.
type CartStore interface {
	// Get returns a snapshot of the session's cart, or an empty cart if the
	// session has none yet. Mutating the returned cart has no effect on the
	// stored state.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Update runs fn against the session's cart under an exclusive
	// per-session lock and persists the result when fn returns nil. When fn
	// returns an error the stored cart is left unchanged and the error is
	// returned. Sessions without a cart get an empty one.
	Update(ctx context.Context, sessionID string, fn func(*cart.Cart) error) error
}
