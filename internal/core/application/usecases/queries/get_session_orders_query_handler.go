package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSessionOrdersQueryHandler reads a session's order history through the
// ownership grants table. Orders the session never placed are invisible.
type GetSessionOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionOrdersQueryHandler creates a handler for session history queries.
func NewGetSessionOrdersQueryHandler(db *gorm.DB) GetSessionOrdersQueryHandler {
	return GetSessionOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the session's orders, most recent
// first. A session with no grants gets an empty slice, never an error.
func (h GetSessionOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSessionOrdersQuery,
) ([]GetSessionOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSessionOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tenant_id,
			t.name,
			o.status,
			o.total,
			o.created_at
		FROM orders o
		JOIN ownership_grants g ON g.order_id = o.id
		JOIN tenants t ON t.id = o.tenant_id
		WHERE g.session_id = ?
		ORDER BY o.created_at DESC
	`, query.SessionID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSessionOrdersQueryResponse
		var id, tenantID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&tenantID,
			&resp.TenantName,
			&status,
			&resp.Total,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		tID, idErr := kernel.UUIDFromBytes(tenantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TenantID = tID
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
