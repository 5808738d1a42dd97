package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and courier binding.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency. The persisted row must still carry the version the aggregate
	// was loaded with; otherwise the update fails with a version conflict and
	// no changes are written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its item snapshot, status and courier binding.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActiveByTenant retrieves all non-terminal orders of a tenant,
	// oldest first. Used for the tenant order board.
	GetAllActiveByTenant(ctx context.Context, tenantID kernel.UUID) ([]*order.Order, error)
}
