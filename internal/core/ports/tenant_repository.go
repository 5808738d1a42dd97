// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenant aggregates.
// Provides methods for storing, retrieving, and querying tenant entities
// with their complete state including categories, hours, and holidays.
type TenantRepository interface {
	// Add persists a new tenant aggregate to storage.
	// The tenant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// Update persists changes to an existing tenant aggregate.
	// The tenant must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *tenant.Tenant) error

	// Get retrieves a tenant aggregate by its unique identifier.
	// Excluded tenants are not returned.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// GetBySlug retrieves a tenant aggregate by its storefront slug.
	// Excluded tenants are not returned.
	GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)

	// GetAllBillingOverdue retrieves active tenants whose next billing date
	// is at or before the given moment. Used by the subscription expiry job.
	GetAllBillingOverdue(ctx context.Context, now time.Time) ([]*tenant.Tenant, error)
}
