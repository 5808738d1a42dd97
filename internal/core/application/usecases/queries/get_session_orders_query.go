package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetSessionOrdersQueryIsNotConstructed = errors.New(
		"GetSessionOrdersQuery must be created via NewGetSessionOrdersQuery constructor",
	)
	ErrSessionIDIsRequired = errors.New("sessionID is required")
)

// GetSessionOrdersQuery lists the orders a browser session has placed,
// across every store, most recent first. Visibility comes from the
// ownership grants recorded at checkout.
type GetSessionOrdersQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetSessionOrdersQuery creates a query for a session's order history.
// Returns ErrSessionIDIsRequired if sessionID is empty.
func NewGetSessionOrdersQuery(sessionID string) (GetSessionOrdersQuery, error) {
	if sessionID == "" {
		return GetSessionOrdersQuery{}, ErrSessionIDIsRequired
	}
	return GetSessionOrdersQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// SessionID returns the session whose history is requested.
func (q GetSessionOrdersQuery) SessionID() string {
	return q.sessionID
}

// Validate ensures the query was created through the constructor.
func (q GetSessionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionOrdersQueryIsNotConstructed)
}

// GetSessionOrdersQueryResponse is one order in a session's history.
type GetSessionOrdersQueryResponse struct {
	ID         kernel.UUID
	TenantID   kernel.UUID
	TenantName string
	Status     string
	Total      int64
	CreatedAt  time.Time
}
