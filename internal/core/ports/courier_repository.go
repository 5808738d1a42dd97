package ports

import (
	"context"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllFreeByTenant retrieves the couriers of a tenant that can take a
	// new delivery. A courier is free when it is available and carries no
	// active order.
	GetAllFreeByTenant(ctx context.Context, tenantID kernel.UUID) ([]*courier.Courier, error)

	// GetAll retrieves every courier. Used by the daily counter reset job.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
