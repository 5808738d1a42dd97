package queries

import (
	"context"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCandidateCouriersQueryHandler reads the dispatchable couriers of a
// store, least loaded first, matching the order the dispatcher prefers.
type GetCandidateCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCandidateCouriersQueryHandler creates a handler for candidate courier queries.
func NewGetCandidateCouriersQueryHandler(db *gorm.DB) GetCandidateCouriersQueryHandler {
	return GetCandidateCouriersQueryHandler{db: db}
}

// Handle executes the query and returns available couriers with no active
// delivery, ordered by today's delivery count ascending.
func (h GetCandidateCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCandidateCouriersQuery,
) ([]GetCandidateCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetCandidateCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			deliveries_today
		FROM couriers
		WHERE tenant_id = ? AND status = ? AND active_order_id IS NULL
		ORDER BY deliveries_today, name
	`, query.TenantID().String(), int(courier.StatusAvailable)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCandidateCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.DeliveriesToday,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = courierID

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
