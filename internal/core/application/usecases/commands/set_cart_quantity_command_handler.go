package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// SetCartQuantityCommandHandler handles absolute quantity updates on a
// session cart. Requests for absent products or quantities below one are
// ignored without error.
type SetCartQuantityCommandHandler struct {
	cartStore ports.CartStore
}

// NewSetCartQuantityCommandHandler creates a handler for absolute cart quantity updates.
func NewSetCartQuantityCommandHandler(cartStore ports.CartStore) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the quantity update command.
func (h SetCartQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		c.SetQuantity(cmd.ProductID(), cmd.Qty())
		return nil
	})
}
