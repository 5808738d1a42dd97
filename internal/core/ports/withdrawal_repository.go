package ports

import (
	"context"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
)

// WithdrawalRepository defines the persistence contract for courier
// withdrawal requests.
type WithdrawalRepository interface {
	// Add persists a new withdrawal request.
	Add(ctx context.Context, request *courier.WithdrawalRequest) error

	// Update persists the resolution of an existing withdrawal request.
	Update(ctx context.Context, request *courier.WithdrawalRequest) error

	// Get retrieves a withdrawal request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.WithdrawalRequest, error)
}
