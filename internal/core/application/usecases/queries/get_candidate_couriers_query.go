package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCandidateCouriersQueryIsNotConstructed = errors.New(
		"GetCandidateCouriersQuery must be created via NewGetCandidateCouriersQuery constructor",
	)
)

// GetCandidateCouriersQuery lists the couriers of a store that are eligible
// for dispatch right now: available and without an active delivery.
type GetCandidateCouriersQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCandidateCouriersQuery creates a query for a store's free couriers.
func NewGetCandidateCouriersQuery(tenantID kernel.UUID) (GetCandidateCouriersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetCandidateCouriersQuery{}, ErrTenantIDIsRequired
	}
	return GetCandidateCouriersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TenantID returns the store whose couriers are requested.
func (q GetCandidateCouriersQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Validate ensures the query was created through the constructor.
func (q GetCandidateCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCandidateCouriersQueryIsNotConstructed)
}

// GetCandidateCouriersQueryResponse is one dispatchable courier.
type GetCandidateCouriersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	DeliveriesToday int
}
