package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads a single order for customer tracking.
// The session must hold an ownership grant for the order.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

type trackedItemRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Qty       int    `json:"qty"`
	Note      string `json:"note"`
}

// Handle executes the tracking query. Returns ObjectNotFoundError both when
// the order does not exist and when the session does not own it.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (*TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			t.name,
			o.status,
			o.fulfillment,
			o.address,
			o.items,
			o.delivery_fee,
			o.total,
			o.payment_method,
			o.change_for,
			o.created_at
		FROM orders o
		JOIN ownership_grants g ON g.order_id = o.id
		JOIN tenants t ON t.id = o.tenant_id
		WHERE o.id = ? AND g.session_id = ?
	`, query.OrderID().String(), query.SessionID()).Row()

	var resp TrackOrderQueryResponse
	var id uuid.UUID
	var status, fulfillment, method int
	var itemsJSON []byte
	var changeFor sql.NullInt64

	err := row.Scan(
		&id,
		&resp.TenantName,
		&status,
		&fulfillment,
		&resp.Address,
		&itemsJSON,
		&resp.DeliveryFee,
		&resp.Total,
		&method,
		&changeFor,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return nil, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	resp.Fulfillment = order.FulfillmentType(fulfillment).String()

	var itemRows []trackedItemRow
	if err = json.Unmarshal(itemsJSON, &itemRows); err != nil {
		return nil, err
	}
	resp.Items = make([]TrackOrderQueryItemResponse, 0, len(itemRows))
	for _, item := range itemRows {
		resp.Items = append(resp.Items, TrackOrderQueryItemResponse{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Qty:       item.Qty,
		})
	}

	if order.PaymentMethod(method) == order.PaymentCash && changeFor.Valid {
		due := changeFor.Int64 - resp.Total
		resp.ChangeDue = &due
	}

	return &resp, nil
}
