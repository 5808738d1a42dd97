package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is the denormalized snapshot of one order line: the product's name and
// unit price as they were at checkout, the ordered quantity, and an optional
// note. It deliberately holds no live product reference so later catalog
// edits cannot alter historical orders.
type Item struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	qty       int
	note      string
}

// NewItem creates an order line snapshot. Quantity must be at least one and
// the snapshotted name must be present.
func NewItem(productID kernel.UUID, name string, unitPrice kernel.Money, qty int, note string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if qty < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item qty", fmt.Errorf("%d is not at least 1", qty))
	}

	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		qty:       qty,
		note:      note,
	}, nil
}

// ProductID returns the originating product's identifier.
// Informational only; the snapshot fields are authoritative.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name as snapshotted at checkout.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price as snapshotted at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Qty returns the ordered quantity.
func (i Item) Qty() int {
	return i.qty
}

// Note returns the optional line note.
func (i Item) Note() string {
	return i.note
}

// Subtotal returns qty times the snapshotted unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulQty(i.qty)
}
