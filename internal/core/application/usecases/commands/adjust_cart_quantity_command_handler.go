package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// AdjustCartQuantityCommandHandler handles signed quantity changes on a
// session cart. Works purely on cart state; over-decrementing clamps at zero
// and an emptied cart releases its tenant binding.
type AdjustCartQuantityCommandHandler struct {
	cartStore ports.CartStore
}

// NewAdjustCartQuantityCommandHandler creates a handler for cart quantity adjustments.
func NewAdjustCartQuantityCommandHandler(cartStore ports.CartStore) AdjustCartQuantityCommandHandler {
	return AdjustCartQuantityCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the quantity adjustment command.
// Adjusting a product that is not in the cart is a no-op.
func (h AdjustCartQuantityCommandHandler) Handle(ctx context.Context, cmd AdjustCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		c.AdjustQuantity(cmd.ProductID(), cmd.Delta())
		return nil
	})
}
