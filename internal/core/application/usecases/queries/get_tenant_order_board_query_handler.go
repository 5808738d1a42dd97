package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTenantOrderBoardQueryHandler reads a store's active orders from the
// database. The store must exist, be active and not excluded, otherwise the
// board is denied.
type GetTenantOrderBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetTenantOrderBoardQueryHandler creates a handler for order board queries.
func NewGetTenantOrderBoardQueryHandler(db *gorm.DB) GetTenantOrderBoardQueryHandler {
	return GetTenantOrderBoardQueryHandler{db: db}
}

// Handle executes the query and returns all non-terminal orders of the store,
// oldest first. Returns ObjectNotFoundError when the store does not exist and
// AccessDeniedError when it is not operational.
func (h GetTenantOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetTenantOrderBoardQuery,
) ([]GetTenantOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureOperational(ctx, query.TenantID()); err != nil {
		return nil, err
	}

	board := make([]GetTenantOrderBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer,
			phone,
			fulfillment,
			address,
			status,
			total,
			courier_id,
			created_at
		FROM orders
		WHERE tenant_id = ? AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.TenantID().String(), int(order.StatusCompleted), int(order.StatusCanceled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTenantOrderBoardQueryResponse
		var id uuid.UUID
		var fulfillment, status int
		var courierID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Customer,
			&resp.Phone,
			&fulfillment,
			&resp.Address,
			&status,
			&resp.Total,
			&courierID,
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
		resp.Fulfillment = order.FulfillmentType(fulfillment).String()
		resp.Status = order.Status(status).String()

		if courierID.Valid {
			cID, cErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &cID
		}

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

func (h GetTenantOrderBoardQueryHandler) ensureOperational(ctx context.Context, tenantID kernel.UUID) error {
	var status int
	var excluded bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT status, excluded
		FROM tenants
		WHERE id = ?
	`, tenantID.String()).Row()

	if err := row.Scan(&status, &excluded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("tenantID", tenantID)
		}
		return err
	}

	if excluded || tenant.SubscriptionStatus(status) != tenant.SubscriptionActive {
		return errs.NewAccessDeniedError("store is not operational")
	}
	return nil
}
