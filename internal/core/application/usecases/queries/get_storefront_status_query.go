package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetStorefrontStatusQueryIsNotConstructed = errors.New(
		"GetStorefrontStatusQuery must be created via NewGetStorefrontStatusQuery constructor",
	)
	ErrSlugIsRequired = errors.New("slug is required")
)

// GetStorefrontStatusQuery resolves a public storefront by its URL slug and
// reports whether it is taking orders right now.
//
// Example:
//
//	query, err := NewGetStorefrontStatusQuery("marios-pizza")
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if status.Operational && status.OpenNow {
//	    fmt.Printf("%s is open, delivery fee %d\n", status.Name, status.DeliveryFee)
//	}
type GetStorefrontStatusQuery struct {
	slug string

	guard guard.ConstructorGuard
}

// NewGetStorefrontStatusQuery creates a storefront lookup by slug.
func NewGetStorefrontStatusQuery(slug string) (GetStorefrontStatusQuery, error) {
	if slug == "" {
		return GetStorefrontStatusQuery{}, ErrSlugIsRequired
	}
	return GetStorefrontStatusQuery{
		slug:  slug,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Slug returns the requested storefront slug.
func (q GetStorefrontStatusQuery) Slug() string {
	return q.slug
}

// Validate ensures the query was created through the constructor.
func (q GetStorefrontStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetStorefrontStatusQueryIsNotConstructed)
}

// GetStorefrontStatusQueryResponse is the public storefront header.
// Operational reflects the subscription, OpenNow the weekly schedule
// and holidays at the time of the request.
type GetStorefrontStatusQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Slug        string
	Operational bool
	OpenNow     bool
	DeliveryFee int64
	Categories  []string
}
