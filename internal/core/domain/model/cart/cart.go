// Package cart provides the Cart aggregate for per-session catalog browsing.
//
// A cart is ephemeral browsing-session state, not persisted order state. It
// binds to at most one tenant at a time: adding an item from a different
// tenant atomically clears the cart and rebinds it, so mixed-tenant carts
// can never exist. The cart never talks to the network or to orders; checkout
// reads it, snapshots it into an order, and clears it.
package cart

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrSessionIsRequired is returned when creating a cart without a browsing session id.
	ErrSessionIsRequired = errs.NewValueIsRequiredError("session id")
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Item is one cart entry: a product reference with a positive quantity.
// Each distinct product appears at most once per cart.
type Item struct {
	ProductID kernel.UUID
	Qty       int
}

// Cart aggregates the selectable items of one browsing session.
//
// Cart follows these invariants:
//   - Bound to at most one tenant at a time; empty carts have no binding
//   - Every item has qty >= 1; an item reaching qty 0 is removed
//   - Items keep insertion order and are unique per product
type Cart struct {
	sessionID string
	tenantID  *kernel.UUID
	items     []Item

	guard guard.ConstructorGuard
}

// NewCart creates an empty, unbound cart for a browsing session.
func NewCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionIsRequired
	}

	return &Cart{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Clone returns an independent copy of the cart. Mutating the clone never
// affects the original.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		sessionID: c.sessionID,
		guard:     c.guard,
	}
	if c.tenantID != nil {
		bound := *c.tenantID
		clone.tenantID = &bound
	}
	if len(c.items) > 0 {
		clone.items = make([]Item, len(c.items))
		copy(clone.items, c.items)
	}
	return clone
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// SessionID returns the owning browsing session's identifier.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// TenantID returns the tenant the cart is currently bound to,
// or nil for an empty cart.
func (c *Cart) TenantID() *kernel.UUID {
	if c.tenantID == nil {
		return nil
	}
	id := *c.tenantID
	return &id
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalQty returns the summed quantity across all entries.
func (c *Cart) TotalQty() int {
	total := 0
	for _, item := range c.items {
		total += item.Qty
	}
	return total
}

// AddItem puts one unit of a product into the cart.
//
// When the cart is bound to a different tenant than tenantID, the contents
// are cleared and the cart rebinds to tenantID before the item is added.
// Adding a product already present increments its quantity by one.
func (c *Cart) AddItem(tenantID, productID kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), productID.Validate()); err != nil {
		return err
	}

	if c.tenantID != nil && !c.tenantID.IsEqual(tenantID) {
		c.items = nil
	}
	if c.tenantID == nil || !c.tenantID.IsEqual(tenantID) {
		bound := tenantID
		c.tenantID = &bound
	}

	for i := range c.items {
		if c.items[i].ProductID.IsEqual(productID) {
			c.items[i].Qty++
			return nil
		}
	}

	c.items = append(c.items, Item{ProductID: productID, Qty: 1})
	return nil
}

// AdjustQuantity shifts a product's quantity by delta, clamping at zero.
// An entry reaching zero is removed; a negative delta larger than the current
// quantity is accepted and simply removes the entry. Adjusting an absent
// product is a no-op.
func (c *Cart) AdjustQuantity(productID kernel.UUID, delta int) {
	for i := range c.items {
		if !c.items[i].ProductID.IsEqual(productID) {
			continue
		}

		c.items[i].Qty += delta
		if c.items[i].Qty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.releaseIfEmpty()
		}
		return
	}
}

// SetQuantity sets a product's quantity exactly. Quantities below one are
// ignored as a no-op, as is setting an absent product.
func (c *Cart) SetQuantity(productID kernel.UUID, qty int) {
	if qty < 1 {
		return
	}

	for i := range c.items {
		if c.items[i].ProductID.IsEqual(productID) {
			c.items[i].Qty = qty
			return
		}
	}
}

// Clear empties the cart and releases the tenant binding.
func (c *Cart) Clear() {
	c.items = nil
	c.tenantID = nil
}

func (c *Cart) releaseIfEmpty() {
	if len(c.items) == 0 {
		c.tenantID = nil
	}
}
