package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// OwnershipRepository defines the persistence contract for the session
// ownership index. A grant records that a browsing session placed an order
// and may therefore see it through customer-facing operations.
type OwnershipRepository interface {
	// Grant records that the session owns the order.
	// Granting the same pair twice is a no-op.
	Grant(ctx context.Context, sessionID string, orderID kernel.UUID) error

	// Owns reports whether the session holds a grant for the order.
	Owns(ctx context.Context, sessionID string, orderID kernel.UUID) (bool, error)

	// GetOrderIDs retrieves the identifiers of all orders granted to the
	// session, most recent grant first.
	GetOrderIDs(ctx context.Context, sessionID string) ([]kernel.UUID, error)
}
