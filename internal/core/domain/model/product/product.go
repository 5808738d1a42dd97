// Package product provides the Product entity for tenant catalogs.
//
// Products belong to exactly one tenant and carry a non-negative price, an
// availability flag, and a category from the tenant's vocabulary. Placed
// orders snapshot product name and price, so catalog edits after checkout
// never alter historical order totals.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents one catalog entry of a tenant.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and tenant identifier
//   - Must have a non-empty name and a non-negative price
//   - Category is free-text drawn from the tenant-scoped vocabulary
type Product struct {
	id        kernel.UUID
	tenantID  kernel.UUID
	name      string
	price     kernel.Money
	category  string
	note      string
	available bool

	guard guard.ConstructorGuard
}

// NewProduct creates an available catalog entry for the given tenant.
func NewProduct(id, tenantID kernel.UUID, name string, price kernel.Money, category string) (*Product, error) {
	p := &Product{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTenantID(tenantID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.price = price
	p.category = category
	return p, nil
}

// RestoreProduct reconstructs a Product entity from persistent storage.
func RestoreProduct(
	id, tenantID kernel.UUID,
	name string,
	price kernel.Money,
	category, note string,
	available bool,
) (*Product, error) {
	p, err := NewProduct(id, tenantID, name, price, category)
	if err != nil {
		return nil, err
	}

	p.note = note
	p.available = available
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// TenantID returns the owning tenant's identifier.
func (p *Product) TenantID() kernel.UUID {
	return p.tenantID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price. Orders snapshot this value at
// checkout; reading it later never affects placed orders.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Category returns the tenant-scoped category label.
func (p *Product) Category() string {
	return p.category
}

// Note returns the optional preparation note shown at checkout.
func (p *Product) Note() string {
	return p.note
}

// IsAvailable reports whether the product can currently be added to carts.
func (p *Product) IsAvailable() bool {
	return p.available
}

// SetAvailability toggles whether the product is selectable in the storefront.
func (p *Product) SetAvailability(available bool) {
	p.available = available
}

// SetPrice updates the catalog price for future orders.
func (p *Product) SetPrice(price kernel.Money) {
	p.price = price
}

// SetNote updates the optional preparation note.
func (p *Product) SetNote(note string) {
	p.note = note
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	p.tenantID = tenantID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
