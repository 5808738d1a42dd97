package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetTenantOrderBoardQueryIsNotConstructed = errors.New(
		"GetTenantOrderBoardQuery must be created via NewGetTenantOrderBoardQuery constructor",
	)
	ErrTenantIDIsRequired = errors.New("tenantID is required")
)

// GetTenantOrderBoardQuery retrieves every non-terminal order of a store for
// its staff dashboard. Only operational stores may read their board.
//
// Example:
//
//	query, err := NewGetTenantOrderBoardQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order board: %w", err)
//	}
//
//	for _, order := range board {
//	    fmt.Printf("%s %s %s\n", order.ID, order.Status, order.Customer)
//	}
type GetTenantOrderBoardQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTenantOrderBoardQuery creates a query for a store's active orders.
// Returns ErrTenantIDIsRequired if tenantID is empty.
func NewGetTenantOrderBoardQuery(tenantID kernel.UUID) (GetTenantOrderBoardQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetTenantOrderBoardQuery{}, ErrTenantIDIsRequired
	}
	return GetTenantOrderBoardQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TenantID returns the store whose board is requested.
func (q GetTenantOrderBoardQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Validate ensures the query was created through the constructor.
func (q GetTenantOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTenantOrderBoardQueryIsNotConstructed)
}

// GetTenantOrderBoardQueryResponse is one row of the staff order board.
type GetTenantOrderBoardQueryResponse struct {
	ID          kernel.UUID
	Customer    string
	Phone       string
	Fulfillment string
	Address     string
	Status      string
	Total       int64
	CourierID   *kernel.UUID
	CreatedAt   time.Time
}
