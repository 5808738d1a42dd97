package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("orderID is required")
)

// TrackOrderQuery retrieves the live status of a single order for the
// session that placed it. An order the session does not own is reported
// as not found, the same as an order that does not exist, so that order
// identifiers cannot be probed.
type TrackOrderQuery struct {
	sessionID string
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query scoped to a session.
func NewTrackOrderQuery(sessionID string, orderID kernel.UUID) (TrackOrderQuery, error) {
	if sessionID == "" {
		return TrackOrderQuery{}, ErrSessionIDIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, ErrOrderIDIsRequired
	}
	return TrackOrderQuery{
		sessionID: sessionID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// SessionID returns the requesting session.
func (q TrackOrderQuery) SessionID() string {
	return q.sessionID
}

// OrderID returns the order being tracked.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackOrderQueryItemResponse is one line of a tracked order.
type TrackOrderQueryItemResponse struct {
	Name      string
	UnitPrice int64
	Qty       int
}

// TrackOrderQueryResponse is the customer-facing view of an order.
type TrackOrderQueryResponse struct {
	ID          kernel.UUID
	TenantName  string
	Status      string
	Fulfillment string
	Address     string
	Items       []TrackOrderQueryItemResponse
	DeliveryFee int64
	Total       int64
	ChangeDue   *int64
	CreatedAt   time.Time
}
